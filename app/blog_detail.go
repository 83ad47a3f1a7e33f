package main

import (
	"context"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/vantura/vantura/internal/apiclient"
)

// BlogDetailPage renders one blog with its comment thread. The blog and
// the comments are fetched independently so a missing blog still shows a
// proper not-found state instead of hanging.
type BlogDetailPage struct {
	app.Compo

	blogID     int64
	blog       *apiclient.Blog
	comments   []apiclient.Comment
	newComment string
	loading    bool
	submitting bool
}

func (p *BlogDetailPage) OnNav(ctx app.Context) {
	id := pathID(ctx.Page().URL().Path)
	if id == p.blogID && !p.loading {
		return
	}
	p.blogID = id
	p.loading = true

	ctx.Async(func() {
		blog, blogErr := api.GetBlog(context.Background(), id)
		comments, commentsErr := api.ListCommentsByBlog(context.Background(), id)

		ctx.Dispatch(func(ctx app.Context) {
			p.loading = false
			if blogErr != nil {
				p.blog = nil
			} else {
				p.blog = blog
			}
			if commentsErr != nil {
				p.comments = nil
			} else {
				p.comments = comments
			}
		})
	})
}

func (p *BlogDetailPage) onCommentSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	content := strings.TrimSpace(p.newComment)
	user := store.Current()
	if content == "" || user == nil || p.submitting {
		return
	}
	p.submitting = true

	req := apiclient.CreateCommentRequest{
		Content: content,
		UserID:  user.ID,
		BlogID:  p.blogID,
	}
	ctx.Async(func() {
		comment, err := api.CreateComment(context.Background(), req)
		ctx.Dispatch(func(ctx app.Context) {
			p.submitting = false
			if err != nil {
				return
			}
			// Append the server's canonical record, not the local draft.
			p.comments = append(p.comments, *comment)
			p.newComment = ""
		})
	})
}

func (p *BlogDetailPage) renderContent() app.UI {
	paragraphs := strings.Split(p.blog.Content, "\n")
	return app.Div().Class("blog-content").Body(
		app.Range(paragraphs).Slice(func(i int) app.UI {
			return app.P().Text(paragraphs[i])
		}),
	)
}

func (p *BlogDetailPage) Render() app.UI {
	if p.loading {
		return loadingView("Loading story...")
	}
	if p.blog == nil {
		return notFoundView("Blog not found.")
	}

	submitLabel := "Post Comment"
	if p.submitting {
		submitLabel = "Posting..."
	}

	return app.Main().Class("page").Body(
		app.Article().Body(
			app.Header().Class("page-hero").Body(
				app.Span().Class("tag").Text(p.blog.CategoryName),
				app.H1().Text(p.blog.Title),
				app.Div().Class("card-author").Body(
					app.Span().Class("author-name").Text(p.blog.AuthorName),
					app.Span().Class("author-date").Text(shortDate(p.blog.CreatedAt)),
				),
			),
			p.renderContent(),
		),

		app.Section().Class("comments").Body(
			app.H2().Text("Comments"),

			app.If(store.Current() != nil, func() app.UI {
				return app.Form().OnSubmit(p.onCommentSubmit).Body(
					app.Textarea().
						Placeholder("Share your thoughts...").
						Required(true).
						Text(p.newComment).
						OnInput(func(ctx app.Context, e app.Event) {
							p.newComment = ctx.JSSrc().Get("value").String()
						}),
					app.Button().
						Type("submit").
						Class("btn-primary").
						Disabled(p.submitting).
						Text(submitLabel),
				)
			}).Else(func() app.UI {
				return app.P().Class("auth-switch").Text("Sign in to join the conversation.")
			}),

			app.If(len(p.comments) > 0, func() app.UI {
				return app.Div().Class("comment-list").Body(
					app.Range(p.comments).Slice(func(i int) app.UI {
						comment := p.comments[i]
						return app.Div().Class("comment").Body(
							app.Div().Class("card-author").Body(
								app.Span().Class("author-name").Text(comment.AuthorName),
								app.Span().Class("author-date").Text(shortDate(comment.CreatedAt)),
							),
							app.P().Text(comment.Content),
						)
					}),
				)
			}).Else(func() app.UI {
				return emptyView("No comments yet. Start the discussion!")
			}),
		),
	)
}
