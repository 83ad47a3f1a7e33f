package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/vantura/vantura/internal/apiclient"
	"github.com/vantura/vantura/internal/session"
)

// One API client and one session store per tab lifetime. Requests go to
// the same-origin /api/v1 prefix, which the host proxies to the backend.
var (
	api   = apiclient.New("/api/v1")
	store = session.New(api, browserStorage{})
)

var memberRoles = []string{"user", "admin"}

func main() {
	app.Route("/", func() app.Composer { return &LoginPage{} })
	app.Route("/register", func() app.Composer { return &RegisterPage{} })
	app.Route("/admin", func() app.Composer {
		return guarded([]string{"admin"}, func() app.UI { return &AdminPage{} })
	})
	app.Route("/home", func() app.Composer {
		return guarded(memberRoles, func() app.UI { return &HomePage{} })
	})
	app.Route("/forums", func() app.Composer {
		return guarded(memberRoles, func() app.UI { return &ForumsPage{} })
	})
	app.Route("/blogs", func() app.Composer {
		return guarded(memberRoles, func() app.UI { return &BlogsPage{} })
	})
	app.RouteWithRegexp(`^/forums/\d+$`, func() app.Composer {
		return guarded(memberRoles, func() app.UI { return &ForumDetailPage{} })
	})
	app.RouteWithRegexp(`^/blog/\d+$`, func() app.Composer {
		return guarded(memberRoles, func() app.UI { return &BlogDetailPage{} })
	})
	// Unknown destinations fall back to the public entry.
	app.RouteWithRegexp(`.*`, func() app.Composer { return &LoginPage{} })

	app.RunWhenOnBrowser()
}
