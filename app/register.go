package main

import (
	"context"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/vantura/vantura/internal/apiclient"
)

// RegisterPage creates an account. Registration never logs the user in;
// on success it routes back to the login screen.
type RegisterPage struct {
	app.Compo

	firstName  string
	lastName   string
	email      string
	password   string
	confirm    string
	role       string
	errMsg     string
	submitting bool
}

// validate is the only client-side pre-validation: required fields, a
// minimum password length and the confirmation match. Everything else is
// the backend's call.
func (p *RegisterPage) validate() string {
	if strings.TrimSpace(p.firstName) == "" || strings.TrimSpace(p.lastName) == "" ||
		strings.TrimSpace(p.email) == "" || p.password == "" {
		return "All fields are required"
	}
	if len(p.password) < 6 {
		return "Password must be at least 6 characters long"
	}
	if p.password != p.confirm {
		return "Passwords do not match"
	}
	return ""
}

func (p *RegisterPage) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if p.submitting {
		return
	}
	if msg := p.validate(); msg != "" {
		p.errMsg = msg
		return
	}
	p.errMsg = ""
	p.submitting = true

	profile := apiclient.Profile{
		FirstName: strings.TrimSpace(p.firstName),
		LastName:  strings.TrimSpace(p.lastName),
		Email:     strings.TrimSpace(p.email),
		Password:  p.password,
		Role:      p.role,
	}
	ctx.Async(func() {
		result := store.Register(context.Background(), profile)
		ctx.Dispatch(func(ctx app.Context) {
			p.submitting = false
			if !result.Success {
				p.errMsg = result.Err
				return
			}
			ctx.Navigate("/")
		})
	})
}

func (p *RegisterPage) Render() app.UI {
	submitLabel := "Create Account"
	if p.submitting {
		submitLabel = "Creating Account..."
	}

	textInput := func(label, placeholder string, value string, bind *string) app.UI {
		return app.Div().Body(
			app.Label().Text(label),
			app.Input().
				Type("text").
				Value(value).
				Placeholder(placeholder).
				Required(true).
				OnInput(func(ctx app.Context, e app.Event) {
					*bind = ctx.JSSrc().Get("value").String()
				}),
		)
	}

	return app.Div().Class("auth-screen").Body(
		app.Div().Class("auth-card").Body(
			app.H1().Text("Create Account"),
			app.P().Class("auth-subtitle").Text("Join our community today"),

			app.If(p.errMsg != "", func() app.UI {
				return app.Div().Class("form-error").Text(p.errMsg)
			}),

			app.Form().OnSubmit(p.onSubmit).Body(
				app.Div().Class("form-row").Body(
					textInput("First Name", "John", p.firstName, &p.firstName),
					textInput("Last Name", "Doe", p.lastName, &p.lastName),
				),
				app.Label().Text("Email Address"),
				app.Input().
					Type("email").
					Value(p.email).
					Placeholder("john@example.com").
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						p.email = ctx.JSSrc().Get("value").String()
					}),
				app.Label().Text("Password"),
				app.Input().
					Type("password").
					Value(p.password).
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						p.password = ctx.JSSrc().Get("value").String()
					}),
				app.P().Class("form-hint").Text("Must be at least 6 characters long."),
				app.Label().Text("Confirm Password"),
				app.Input().
					Type("password").
					Value(p.confirm).
					Required(true).
					OnInput(func(ctx app.Context, e app.Event) {
						p.confirm = ctx.JSSrc().Get("value").String()
					}),
				app.Label().Text("Preferred Role"),
				app.Select().
					OnChange(func(ctx app.Context, e app.Event) {
						p.role = ctx.JSSrc().Get("value").String()
					}).
					Body(
						app.Option().Value("USER").Text("User"),
						app.Option().Value("ADMIN").Text("Admin"),
					),
				app.Button().
					Type("submit").
					Class("btn-primary").
					Disabled(p.submitting).
					Text(submitLabel),
			),

			app.P().Class("auth-switch").Body(
				app.Text("Already have an account? "),
				app.A().Href("/").Text("Sign in"),
			),
		),
	)
}
