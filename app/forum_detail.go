package main

import (
	"context"
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/vantura/vantura/internal/apiclient"
)

// ForumDetailPage shows one forum with the blogs posted into it. The
// forum record and the blog list are fetched independently; either may
// fail on its own without leaving the page stuck loading.
type ForumDetailPage struct {
	app.Compo

	forumID   int64
	forum     *apiclient.Forum
	blogs     []apiclient.Blog
	loading   bool
	showModal bool
}

func (p *ForumDetailPage) OnNav(ctx app.Context) {
	id := pathID(ctx.Page().URL().Path)
	if id == p.forumID && !p.loading {
		return
	}
	p.forumID = id
	p.loading = true
	p.fetch(ctx)
}

func (p *ForumDetailPage) fetch(ctx app.Context) {
	id := p.forumID
	ctx.Async(func() {
		forum, forumErr := api.GetForum(context.Background(), id)
		blogs, blogsErr := api.ListBlogsByForum(context.Background(), id)

		ctx.Dispatch(func(ctx app.Context) {
			p.loading = false
			if forumErr != nil {
				p.forum = nil
			} else {
				p.forum = forum
			}
			if blogsErr != nil {
				p.blogs = nil
			} else {
				p.blogs = blogs
			}
		})
	})
}

func (p *ForumDetailPage) Render() app.UI {
	if p.loading {
		return loadingView("Loading forum discussions...")
	}
	if p.forum == nil {
		return notFoundView("Forum not found.")
	}

	return app.Main().Class("page").Body(
		app.Header().Class("page-hero").Body(
			app.Span().Class("tag").Text("Community Forum"),
			app.H1().Text(p.forum.Title),
			app.P().Text(p.forum.Description),
			app.Div().Class("hero-stats").Body(
				app.Div().Body(
					app.Span().Class("stat-value").Text(fmt.Sprintf("%d", len(p.blogs))),
					app.Span().Class("stat-label").Text("Discussions"),
				),
				app.Div().Body(
					app.Span().Class("stat-value").Text(fmt.Sprintf("%d", len(p.forum.UserIDs))),
					app.Span().Class("stat-label").Text("Members"),
				),
			),
			app.If(store.Current() != nil, func() app.UI {
				return app.Button().
					Class("btn-primary").
					Text("Start New Discussion").
					OnClick(func(ctx app.Context, e app.Event) {
						p.showModal = true
					})
			}),
		),

		app.Section().Body(
			app.H2().Text("Latest Discussions"),
			app.If(len(p.blogs) > 0, func() app.UI {
				return app.Div().Class("card-grid").Body(
					app.Range(p.blogs).Slice(func(i int) app.UI {
						return p.renderBlog(p.blogs[i])
					}),
				)
			}).Else(func() app.UI {
				return emptyView("It's quiet in here... Be the first to start a discussion in this forum!")
			}),
		),

		app.If(p.showModal, func() app.UI {
			return &CreateBlogModal{
				preselectedForumID: p.forum.ID,
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

func (p *ForumDetailPage) renderBlog(blog apiclient.Blog) app.UI {
	category := blog.CategoryName
	if category == "" {
		category = "General"
	}

	return app.Div().Class("card blog-card").Body(
		app.Span().Class("tag").Text(category),
		app.H3().Text(blog.Title),
		app.P().Class("card-description").Text(blog.Content),
		app.Div().Class("card-footer").Body(
			app.Div().Class("card-author").Body(
				app.Span().Class("author-name").Text(blog.AuthorName),
				app.Span().Class("author-date").Text(shortDate(blog.CreatedAt)),
			),
			app.Button().
				Class("btn-link").
				Text("Read").
				OnClick(func(ctx app.Context, e app.Event) {
					ctx.Navigate(fmt.Sprintf("/blog/%d", blog.ID))
				}),
		),
	)
}
