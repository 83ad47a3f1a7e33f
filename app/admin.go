package main

import (
	"context"
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/vantura/vantura/internal/apiclient"
)

// AdminPage manages forums and categories. Every mutation refetches both
// lists; the owner id on a new forum always comes from the live session.
type AdminPage struct {
	app.Compo

	forums     []apiclient.Forum
	categories []apiclient.Category

	showForumForm    bool
	showCategoryForm bool

	forumTitle          string
	forumDescription    string
	categoryName        string
	categoryDescription string

	errMsg string
}

func (p *AdminPage) OnMount(ctx app.Context) {
	p.fetch(ctx)
}

func (p *AdminPage) fetch(ctx app.Context) {
	ctx.Async(func() {
		forums, forumsErr := api.ListForums(context.Background())
		categories, categoriesErr := api.ListCategories(context.Background())
		ctx.Dispatch(func(ctx app.Context) {
			if forumsErr == nil {
				p.forums = forums
			}
			if categoriesErr == nil {
				p.categories = categories
			}
		})
	})
}

func (p *AdminPage) onCreateForum(ctx app.Context, e app.Event) {
	e.PreventDefault()
	user := store.Current()
	if user == nil {
		return
	}
	req := apiclient.CreateForumRequest{
		Title:       p.forumTitle,
		Description: p.forumDescription,
		UserID:      user.ID,
	}
	ctx.Async(func() {
		_, err := api.CreateForum(context.Background(), req)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = apiMessage(err, "Could not create the forum")
				return
			}
			p.errMsg = ""
			p.forumTitle = ""
			p.forumDescription = ""
			p.showForumForm = false
			p.fetch(ctx)
		})
	})
}

func (p *AdminPage) onCreateCategory(ctx app.Context, e app.Event) {
	e.PreventDefault()
	req := apiclient.CreateCategoryRequest{
		Name:        p.categoryName,
		Description: p.categoryDescription,
	}
	ctx.Async(func() {
		_, err := api.CreateCategory(context.Background(), req)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = apiMessage(err, "Could not create the category")
				return
			}
			p.errMsg = ""
			p.categoryName = ""
			p.categoryDescription = ""
			p.showCategoryForm = false
			p.fetch(ctx)
		})
	})
}

func (p *AdminPage) onDeleteForum(ctx app.Context, id int64) {
	if !app.Window().Call("confirm", "Delete this forum?").Bool() {
		return
	}
	ctx.Async(func() {
		err := api.DeleteForum(context.Background(), id)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = apiMessage(err, "Could not delete the forum")
				return
			}
			p.fetch(ctx)
		})
	})
}

func (p *AdminPage) onDeleteCategory(ctx app.Context, id int64) {
	if !app.Window().Call("confirm", "Delete this category?").Bool() {
		return
	}
	ctx.Async(func() {
		err := api.DeleteCategory(context.Background(), id)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.errMsg = apiMessage(err, "Could not delete the category")
				return
			}
			p.fetch(ctx)
		})
	})
}

func apiMessage(err error, fallback string) string {
	if apiErr, ok := err.(*apiclient.APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func (p *AdminPage) Render() app.UI {
	return app.Main().Class("page").Body(
		app.Header().Class("page-hero").Body(
			app.H1().Text("Command Center"),
			app.P().Class("tag").Text("Administrator Privileges Active"),
		),

		app.If(p.errMsg != "", func() app.UI {
			return app.Div().Class("form-error").Text(p.errMsg)
		}),

		app.Div().Class("admin-grid").Body(
			p.renderForumSection(),
			p.renderCategorySection(),
		),
	)
}

func (p *AdminPage) renderForumSection() app.UI {
	toggleLabel := "+ New Forum"
	if p.showForumForm {
		toggleLabel = "× Close"
	}

	return app.Section().Class("admin-section").Body(
		app.Div().Class("page-header").Body(
			app.H2().Text("Forums"),
			app.Button().Class("btn-secondary").Text(toggleLabel).
				OnClick(func(ctx app.Context, e app.Event) {
					p.showForumForm = !p.showForumForm
				}),
		),

		app.If(p.showForumForm, func() app.UI {
			return app.Form().Class("admin-form").OnSubmit(p.onCreateForum).Body(
				app.Input().
					Type("text").
					Value(p.forumTitle).
					Placeholder("Forum Title").
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						p.forumTitle = ctx.JSSrc().Get("value").String()
					}),
				app.Textarea().
					Placeholder("Forum Description").
					Text(p.forumDescription).
					OnInput(func(ctx app.Context, e app.Event) {
						p.forumDescription = ctx.JSSrc().Get("value").String()
					}),
				app.Button().Type("submit").Class("btn-primary").Text("Create Forum"),
			)
		}),

		app.Div().Class("admin-list").Body(
			app.Range(p.forums).Slice(func(i int) app.UI {
				forum := p.forums[i]
				return app.Div().Class("admin-row").Body(
					app.Div().Body(
						app.H3().Text(forum.Title),
						app.P().Text(fmt.Sprintf("%d members • %d posts", len(forum.UserIDs), len(forum.BlogIDs))),
					),
					app.Button().Class("btn-danger").Text("Delete").
						OnClick(func(ctx app.Context, e app.Event) {
							p.onDeleteForum(ctx, forum.ID)
						}),
				)
			}),
		),
	)
}

func (p *AdminPage) renderCategorySection() app.UI {
	toggleLabel := "+ New Category"
	if p.showCategoryForm {
		toggleLabel = "× Close"
	}

	return app.Section().Class("admin-section").Body(
		app.Div().Class("page-header").Body(
			app.H2().Text("Categories"),
			app.Button().Class("btn-secondary").Text(toggleLabel).
				OnClick(func(ctx app.Context, e app.Event) {
					p.showCategoryForm = !p.showCategoryForm
				}),
		),

		app.If(p.showCategoryForm, func() app.UI {
			return app.Form().Class("admin-form").OnSubmit(p.onCreateCategory).Body(
				app.Input().
					Type("text").
					Value(p.categoryName).
					Placeholder("Category Name").
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						p.categoryName = ctx.JSSrc().Get("value").String()
					}),
				app.Textarea().
					Placeholder("Category Description").
					Text(p.categoryDescription).
					OnInput(func(ctx app.Context, e app.Event) {
						p.categoryDescription = ctx.JSSrc().Get("value").String()
					}),
				app.Button().Type("submit").Class("btn-primary").Text("Create Category"),
			)
		}),

		app.Div().Class("admin-list").Body(
			app.Range(p.categories).Slice(func(i int) app.UI {
				category := p.categories[i]
				return app.Div().Class("admin-row").Body(
					app.Div().Body(
						app.H3().Text(category.Name),
						app.P().Text(category.Description),
					),
					app.Button().Class("btn-danger").Text("Delete").
						OnClick(func(ctx app.Context, e app.Event) {
							p.onDeleteCategory(ctx, category.ID)
						}),
				)
			}),
		),
	)
}
