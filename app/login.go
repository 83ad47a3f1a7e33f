package main

import (
	"context"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/vantura/vantura/internal/apiclient"
)

// LoginPage is the public entry. A successful login routes admins to the
// dashboard and everyone else to the member home.
type LoginPage struct {
	app.Compo

	username   string
	password   string
	errMsg     string
	submitting bool
}

func (p *LoginPage) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if p.submitting {
		return
	}
	p.errMsg = ""
	p.submitting = true

	creds := apiclient.Credentials{
		Username: strings.TrimSpace(p.username),
		Password: p.password,
	}
	ctx.Async(func() {
		result := store.Login(context.Background(), creds)
		ctx.Dispatch(func(ctx app.Context) {
			p.submitting = false
			if !result.Success {
				p.errMsg = result.Err
				return
			}
			if strings.EqualFold(result.Role, "admin") {
				ctx.Navigate("/admin")
			} else {
				ctx.Navigate("/home")
			}
		})
	})
}

func (p *LoginPage) Render() app.UI {
	submitLabel := "Sign In"
	if p.submitting {
		submitLabel = "Signing In..."
	}

	return app.Div().Class("auth-screen").Body(
		app.Div().Class("auth-card").Body(
			app.Div().Class("auth-brand").Body(
				app.Span().Class("navbar-logo").Text("V"),
				app.Span().Class("navbar-title").Text("VANTURA"),
			),
			app.H1().Text("Welcome Back"),
			app.P().Class("auth-subtitle").Text("Please enter your details to sign in"),

			app.If(p.errMsg != "", func() app.UI {
				return app.Div().Class("form-error").Text(p.errMsg)
			}),

			app.Form().OnSubmit(p.onSubmit).Body(
				app.Label().Text("Username or Email"),
				app.Input().
					Type("text").
					Value(p.username).
					Placeholder("Enter your username").
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						p.username = ctx.JSSrc().Get("value").String()
					}),
				app.Label().Text("Password"),
				app.Input().
					Type("password").
					Value(p.password).
					Placeholder("••••••••").
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						p.password = ctx.JSSrc().Get("value").String()
					}),
				app.Button().
					Type("submit").
					Class("btn-primary").
					Disabled(p.submitting).
					Text(submitLabel),
			),

			app.P().Class("auth-switch").Body(
				app.Text("Don't have an account? "),
				app.A().Href("/register").Text("Create account"),
			),
		),
	)
}
