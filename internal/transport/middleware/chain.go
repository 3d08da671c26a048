package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware outermost first: Chain(a, b)(h) is a(b(h)).
// Nil entries are skipped, so optional layers can be listed inline with When.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				h = mws[i](h)
			}
		}
		return h
	}
}

// When returns mw if on is set and nil otherwise.
func When(on bool, mw Middleware) Middleware {
	if !on {
		return nil
	}
	return mw
}
