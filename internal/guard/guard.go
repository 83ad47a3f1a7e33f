// Package guard decides whether the current session may view a
// role-restricted destination. The decision is pure and is evaluated on
// every navigation, never cached: login and logout change the session
// without a page reload.
package guard

import (
	"strings"

	"github.com/vantura/vantura/internal/apiclient"
)

// PublicEntry is the destination both denial outcomes redirect to. The
// platform deliberately sends unauthenticated and unauthorized visitors to
// the same place; the outcomes stay distinct so a caller could split them.
const PublicEntry = "/"

type Outcome int

const (
	// Defer means the identity probe has not finished; render nothing
	// and make no redirect decision.
	Defer Outcome = iota
	// Allow renders the destination.
	Allow
	// DenyUnauthenticated redirects to the public entry: no session.
	DenyUnauthenticated
	// DenyUnauthorized redirects to the public entry: a session exists
	// but its role is not in the allowed set.
	DenyUnauthorized
)

// Denied reports whether o requires a redirect.
func (o Outcome) Denied() bool {
	return o == DenyUnauthenticated || o == DenyUnauthorized
}

// RedirectTarget returns where a denied navigation goes.
func (o Outcome) RedirectTarget() string {
	return PublicEntry
}

// Evaluate gates one navigation. An empty allowed set means any
// authenticated user; role comparison is case-insensitive.
func Evaluate(loading bool, user *apiclient.User, allowed []string) Outcome {
	if loading {
		return Defer
	}
	if user == nil {
		return DenyUnauthenticated
	}
	if len(allowed) == 0 {
		return Allow
	}
	for _, role := range allowed {
		if strings.EqualFold(role, user.Role) {
			return Allow
		}
	}
	return DenyUnauthorized
}
