package main

import (
	"context"
	"strconv"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/vantura/vantura/internal/apiclient"
)

// CreateBlogModal is the publish form shared by the blogs page and the
// forum detail page. It loads the forum and category options on mount and
// reports back to its parent through callbacks.
type CreateBlogModal struct {
	app.Compo

	preselectedForumID int64
	onClose            func()
	onCreated          func(ctx app.Context)

	forums     []apiclient.Forum
	categories []apiclient.Category
	title      string
	content    string
	forumID    int64
	categoryID int64
	errMsg     string
	submitting bool
}

func (m *CreateBlogModal) OnMount(ctx app.Context) {
	m.forumID = m.preselectedForumID
	ctx.Async(func() {
		forums, forumsErr := api.ListForums(context.Background())
		categories, categoriesErr := api.ListCategories(context.Background())
		ctx.Dispatch(func(ctx app.Context) {
			if forumsErr == nil {
				m.forums = forums
			}
			if categoriesErr == nil {
				m.categories = categories
			}
		})
	})
}

func (m *CreateBlogModal) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	user := store.Current()
	if user == nil || m.submitting {
		return
	}
	if m.forumID == 0 || m.categoryID == 0 {
		m.errMsg = "Pick a forum and a category"
		return
	}
	m.errMsg = ""
	m.submitting = true

	req := apiclient.CreateBlogRequest{
		Title:      m.title,
		Content:    m.content,
		UserID:     user.ID,
		ForumID:    m.forumID,
		CategoryID: m.categoryID,
	}
	ctx.Async(func() {
		_, err := api.CreateBlog(context.Background(), req)
		ctx.Dispatch(func(ctx app.Context) {
			m.submitting = false
			if err != nil {
				if apiErr, ok := err.(*apiclient.APIError); ok && apiErr.Message != "" {
					m.errMsg = apiErr.Message
				} else {
					m.errMsg = "Could not publish the story"
				}
				return
			}
			if m.onCreated != nil {
				m.onCreated(ctx)
			}
		})
	})
}

func (m *CreateBlogModal) Render() app.UI {
	submitLabel := "Publish Story"
	if m.submitting {
		submitLabel = "Publishing..."
	}

	return app.Div().Class("modal-backdrop").Body(
		app.Div().Class("modal").Body(
			app.Div().Class("modal-header").Body(
				app.H2().Text("New Story"),
				app.Button().Class("modal-close").Text("×").
					OnClick(func(ctx app.Context, e app.Event) {
						if m.onClose != nil {
							m.onClose()
						}
					}),
			),

			app.If(m.errMsg != "", func() app.UI {
				return app.Div().Class("form-error").Text(m.errMsg)
			}),

			app.Form().OnSubmit(m.onSubmit).Body(
				app.Input().
					Type("text").
					Value(m.title).
					Placeholder("What's on your mind?").
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						m.title = ctx.JSSrc().Get("value").String()
					}),

				app.Div().Class("form-row").Body(
					app.Select().
						Required(true).
						OnChange(func(ctx app.Context, e app.Event) {
							m.forumID, _ = strconv.ParseInt(ctx.JSSrc().Get("value").String(), 10, 64)
						}).
						Body(
							app.Option().Value("").Text("Select Destination").Selected(m.forumID == 0),
							app.Range(m.forums).Slice(func(i int) app.UI {
								forum := m.forums[i]
								return app.Option().
									Value(strconv.FormatInt(forum.ID, 10)).
									Text(forum.Title).
									Selected(forum.ID == m.forumID)
							}),
						),
					app.Select().
						Required(true).
						OnChange(func(ctx app.Context, e app.Event) {
							m.categoryID, _ = strconv.ParseInt(ctx.JSSrc().Get("value").String(), 10, 64)
						}).
						Body(
							app.Option().Value("").Text("Select Genre").Selected(m.categoryID == 0),
							app.Range(m.categories).Slice(func(i int) app.UI {
								category := m.categories[i]
								return app.Option().
									Value(strconv.FormatInt(category.ID, 10)).
									Text(category.Name).
									Selected(category.ID == m.categoryID)
							}),
						),
				),

				app.Textarea().
					Placeholder("Write your story here...").
					Required(true).
					Text(m.content).
					OnInput(func(ctx app.Context, e app.Event) {
						m.content = ctx.JSSrc().Get("value").String()
					}),

				app.Button().
					Type("submit").
					Class("btn-primary").
					Disabled(m.submitting).
					Text(submitLabel),
			),
		),
	)
}
