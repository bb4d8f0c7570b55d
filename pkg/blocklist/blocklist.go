// Package blocklist tracks apps the writer wants blocked while writing and
// the platform authorization needed to enforce it.
package blocklist

import (
	"context"
	"sort"
	"strings"
)

// App is a blockable application.
type App struct {
	Name     string `json:"name"`
	BundleID string `json:"bundleId"`
}

// Catalog is the list offered for selection.
var Catalog = []App{
	{Name: "Facebook", BundleID: "com.facebook.Facebook"},
	{Name: "Instagram", BundleID: "com.instagram.Instagram"},
	{Name: "Twitter", BundleID: "com.twitter.Twitter"},
	{Name: "TikTok", BundleID: "com.zhiliaoapp.musically"},
	{Name: "YouTube", BundleID: "com.google.ios.youtube"},
	{Name: "WhatsApp", BundleID: "net.whatsapp.WhatsApp"},
	{Name: "Snapchat", BundleID: "com.toyopagroup.picaboo"},
	{Name: "Reddit", BundleID: "com.reddit.Reddit"},
	{Name: "LinkedIn", BundleID: "com.linkedin.LinkedIn"},
	{Name: "Pinterest", BundleID: "pinterest"},
}

// Lookup finds a catalog app by name or bundle id, case-insensitively.
func Lookup(s string) (App, bool) {
	s = strings.TrimSpace(s)
	for _, a := range Catalog {
		if strings.EqualFold(a.Name, s) || strings.EqualFold(a.BundleID, s) {
			return a, true
		}
	}
	return App{}, false
}

// Set is a selection of bundle ids.
type Set map[string]bool

// NewSet builds a set from bundle ids.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			s[id] = true
		}
	}
	return s
}

// Toggle flips the selection of id and returns the new state.
func (s Set) Toggle(id string) bool {
	if s[id] {
		delete(s, id)
		return false
	}
	s[id] = true
	return true
}

// IDs returns the selected bundle ids, sorted.
func (s Set) IDs() []string {
	out := make([]string, 0, len(s))
	for id, on := range s {
		if on {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Authorizer asks the platform for permission to block apps. The callback
// runs once, possibly on another goroutine, with the result. Denial carries
// no detail and may be retried.
type Authorizer interface {
	RequestAuthorization(ctx context.Context, done func(authorized bool))
}

// Unsupported is the Authorizer for platforms without a screen-time API.
type Unsupported struct{}

func (Unsupported) RequestAuthorization(ctx context.Context, done func(bool)) {
	go done(false)
}

// AuthorizerFunc adapts a function to Authorizer.
type AuthorizerFunc func(ctx context.Context) bool

func (f AuthorizerFunc) RequestAuthorization(ctx context.Context, done func(bool)) {
	go func() {
		done(f(ctx))
	}()
}

// Await blocks until the authorizer answers or ctx is done. Only the first
// answer counts; later calls to done return immediately.
func Await(ctx context.Context, a Authorizer) bool {
	ch := make(chan bool, 1)
	a.RequestAuthorization(ctx, func(ok bool) {
		select {
		case ch <- ok:
		default:
		}
	})
	select {
	case ok := <-ch:
		return ok
	case <-ctx.Done():
		return false
	}
}
