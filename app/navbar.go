package main

import (
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// Navbar renders the top navigation for logged-in users and nothing at
// all otherwise.
type Navbar struct {
	app.Compo
}

func (n *Navbar) onLogout(ctx app.Context, e app.Event) {
	store.Logout()
	ctx.Navigate("/")
}

func (n *Navbar) Render() app.UI {
	user := store.Current()
	if user == nil {
		return app.Div()
	}

	isMember := strings.EqualFold(user.Role, "admin") || strings.EqualFold(user.Role, "user")

	return app.Nav().Class("navbar").Body(
		app.Div().Class("navbar-brand").Body(
			app.Span().Class("navbar-logo").Text("V"),
			app.Span().Class("navbar-title").Text("VANTURA"),
		),
		app.Div().Class("navbar-links").Body(
			app.If(isMember, func() app.UI {
				return app.Div().Body(
					app.A().Href("/forums").Class("navbar-link").Text("Forums"),
					app.A().Href("/blogs").Class("navbar-link").Text("Blogs"),
				)
			}),
			app.If(strings.EqualFold(user.Role, "admin"), func() app.UI {
				return app.A().Href("/admin").Class("navbar-link").Text("Admin")
			}),
		),
		app.Div().Class("navbar-user").Body(
			app.Span().Class("navbar-name").Text(user.FullName()),
			app.Button().Class("navbar-logout").Text("Logout").OnClick(n.onLogout),
		),
	)
}
