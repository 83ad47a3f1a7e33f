package main

import (
	"context"
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/vantura/vantura/internal/apiclient"
)

// BlogsPage is the community-wide feed with the create-blog modal.
type BlogsPage struct {
	app.Compo

	blogs     []apiclient.Blog
	loading   bool
	showModal bool
}

func (p *BlogsPage) OnMount(ctx app.Context) {
	p.loading = true
	p.fetch(ctx)
}

func (p *BlogsPage) fetch(ctx app.Context) {
	ctx.Async(func() {
		blogs, err := api.ListBlogs(context.Background())
		ctx.Dispatch(func(ctx app.Context) {
			p.loading = false
			if err != nil {
				p.blogs = nil
				return
			}
			p.blogs = blogs
		})
	})
}

func (p *BlogsPage) Render() app.UI {
	if p.loading {
		return loadingView("Loading stories...")
	}

	return app.Main().Class("page").Body(
		app.Header().Class("page-header").Body(
			app.Div().Body(
				app.H1().Text("Community Blogs"),
				app.P().Text("Discover stories, thinking, and expertise from writers across the community."),
			),
			app.Button().
				Class("btn-primary").
				Text("Draft a Story").
				OnClick(func(ctx app.Context, e app.Event) {
					p.showModal = true
				}),
		),

		app.If(len(p.blogs) > 0, func() app.UI {
			return app.Div().Class("card-grid").Body(
				app.Range(p.blogs).Slice(func(i int) app.UI {
					return p.renderBlog(p.blogs[i])
				}),
			)
		}).Else(func() app.UI {
			return emptyView("No stories yet. Draft the first one!")
		}),

		app.If(p.showModal, func() app.UI {
			return &CreateBlogModal{
				onClose: func() {
					p.showModal = false
				},
				onCreated: func(ctx app.Context) {
					p.showModal = false
					p.loading = true
					p.fetch(ctx)
				},
			}
		}),
	)
}

func (p *BlogsPage) renderBlog(blog apiclient.Blog) app.UI {
	category := blog.CategoryName
	if category == "" {
		category = "General"
	}

	return app.Article().Class("card blog-card").Body(
		app.Div().Class("card-meta").Body(
			app.Span().Class("tag").Text(category),
			app.Span().Class("author-date").Text(shortDate(blog.CreatedAt)),
		),
		app.H2().Body(
			app.A().Href(fmt.Sprintf("/blog/%d", blog.ID)).Text(blog.Title),
		),
		app.P().Class("card-description").Text(blog.Content),
		app.Div().Class("card-footer").Body(
			app.Span().Class("author-name").Text(blog.AuthorName),
			app.A().
				Href(fmt.Sprintf("/blog/%d", blog.ID)).
				Class("btn-link").
				Text("Read Story"),
		),
	)
}
