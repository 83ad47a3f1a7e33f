package main

import "github.com/maxence-charriere/go-app/v10/pkg/app"

// browserStorage adapts window.localStorage to the session.Storage
// interface. The only key the session store keeps there is the user-id
// echo, a non-authoritative hint surviving reloads.
type browserStorage struct{}

func (browserStorage) Get(key string) (string, bool) {
	v := app.Window().Get("localStorage").Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

func (browserStorage) Set(key, value string) error {
	app.Window().Get("localStorage").Call("setItem", key, value)
	return nil
}

func (browserStorage) Delete(key string) error {
	app.Window().Get("localStorage").Call("removeItem", key)
	return nil
}
