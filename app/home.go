package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// HomePage greets the member and links into the content areas.
type HomePage struct {
	app.Compo
}

func (p *HomePage) Render() app.UI {
	name := "there"
	if user := store.Current(); user != nil {
		name = user.FullName()
	}

	return app.Main().Class("page").Body(
		app.Header().Class("page-hero").Body(
			app.H1().Text("Welcome back, "+name),
			app.P().Text("Catch up on the latest discussions and stories from your community."),
		),
		app.Div().Class("home-actions").Body(
			app.A().Href("/blogs").Class("btn-primary").Text("Explore Feed"),
			app.A().Href("/forums").Class("btn-secondary").Text("Browse Forums"),
		),
	)
}
