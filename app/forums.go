package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/vantura/vantura/internal/apiclient"
)

// ForumsPage lists every forum. Admins get a shortcut to the dashboard's
// create form.
type ForumsPage struct {
	app.Compo

	forums  []apiclient.Forum
	loading bool
}

func (p *ForumsPage) OnMount(ctx app.Context) {
	p.loading = true
	ctx.Async(func() {
		forums, err := api.ListForums(context.Background())
		ctx.Dispatch(func(ctx app.Context) {
			p.loading = false
			if err != nil {
				p.forums = nil
				return
			}
			p.forums = forums
		})
	})
}

func (p *ForumsPage) Render() app.UI {
	if p.loading {
		return loadingView("Loading community forums...")
	}

	user := store.Current()
	isAdmin := user != nil && strings.EqualFold(user.Role, "admin")

	return app.Main().Class("page").Body(
		app.Header().Class("page-header").Body(
			app.Div().Body(
				app.H1().Text("Community Forums"),
				app.P().Text("Join discussions and share your thoughts with the community."),
			),
			app.If(isAdmin, func() app.UI {
				return app.Button().
					Class("btn-primary").
					Text("+ Create New Forum").
					OnClick(func(ctx app.Context, e app.Event) {
						ctx.Navigate("/admin")
					})
			}),
		),

		app.If(len(p.forums) > 0, func() app.UI {
			return app.Div().Class("card-grid").Body(
				app.Range(p.forums).Slice(func(i int) app.UI {
					return p.renderForum(p.forums[i])
				}),
			)
		}).Else(func() app.UI {
			return emptyView("No forums found. Be the first to start a conversation!")
		}),
	)
}

func (p *ForumsPage) renderForum(forum apiclient.Forum) app.UI {
	return app.Div().Class("card forum-card").Body(
		app.H2().Text(forum.Title),
		app.P().Class("card-description").Text(forum.Description),
		app.Div().Class("card-footer").Body(
			app.Div().Class("card-stats").Body(
				app.Span().Text(fmt.Sprintf("%d blogs", len(forum.BlogIDs))),
				app.Span().Text(fmt.Sprintf("%d members", len(forum.UserIDs))),
			),
			app.Button().
				Class("btn-link").
				Text("Enter Forum").
				OnClick(func(ctx app.Context, e app.Event) {
					ctx.Navigate(fmt.Sprintf("/forums/%d", forum.ID))
				}),
		),
	)
}
