package main

import (
	"context"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/vantura/vantura/internal/guard"
)

// Guarded wraps a role-restricted page. It triggers the one-time identity
// probe, re-applies the guard on every navigation and renders nothing
// until the session state is known, so a slow probe never causes a flash
// redirect to login.
type Guarded struct {
	app.Compo

	roles []string
	child func() app.UI
}

func guarded(roles []string, child func() app.UI) *Guarded {
	return &Guarded{roles: roles, child: child}
}

func (g *Guarded) OnMount(ctx app.Context) {
	g.check(ctx)
}

func (g *Guarded) OnNav(ctx app.Context) {
	g.check(ctx)
}

func (g *Guarded) check(ctx app.Context) {
	ctx.Async(func() {
		store.Initialize(context.Background())
		ctx.Dispatch(func(ctx app.Context) {
			outcome := guard.Evaluate(store.Loading(), store.Current(), g.roles)
			if outcome.Denied() {
				ctx.Navigate(outcome.RedirectTarget())
			}
		})
	})
}

func (g *Guarded) Render() app.UI {
	if guard.Evaluate(store.Loading(), store.Current(), g.roles) != guard.Allow {
		return app.Div()
	}
	return app.Div().Body(
		&Navbar{},
		g.child(),
	)
}
