package main

import (
	"strconv"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// pathID extracts the trailing numeric id from a destination like
// /forums/7 or /blog/12. Zero means the path carried no usable id.
func pathID(path string) int64 {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 {
		return 0
	}
	id, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func loadingView(message string) app.UI {
	return app.Div().Class("state-view").Body(
		app.Div().Class("spinner"),
		app.P().Text(message),
	)
}

func emptyView(message string) app.UI {
	return app.Div().Class("state-view empty").Body(
		app.P().Text(message),
	)
}

func notFoundView(message string) app.UI {
	return app.Div().Class("state-view not-found").Body(
		app.P().Text(message),
	)
}

// shortDate trims an ISO timestamp down to its date part for card
// footers.
func shortDate(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
