package main

import (
	"fmt"
	"net/http"
	"net/url"
)

// Base every request target is resolved against. Only the path of the result is
// used for routing, so the host never matters
var requestBase = &url.URL{Scheme: "http", Host: "localhost", Path: "/"}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		// Deferred function always runs in event of a panic
		defer func() {
			// Use recover to check if panic occurred or not
			if err := recover(); err != nil {
				// Connection: close makes net/http drop the connection after this response
				rw.Header().Set("Connection", "close")
				// Normalize the recovered value into an error, log it at ERROR & send a 500
				app.serverErrorResponse(rw, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(rw, r)
	})
}

// resolveTarget rebuilds r.URL from the raw request target as a URL reference resolved
// against requestBase: fragments are dropped, dot segments are removed and the path
// stays percent-encoded, so "/%68ealth" is not "/health"
func (app *application) resolveTarget(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		// Requests built outside net/http's server carry no RequestURI
		target := r.RequestURI
		if target == "" {
			target = r.URL.RequestURI()
		}

		// Unparseable targets cannot name a route
		ref, err := url.Parse(target)
		if err != nil {
			app.notFoundResponse(rw, r)
			return
		}

		resolved := requestBase.ResolveReference(ref)

		// A network-path reference like "//health" resolves to an empty path on another host
		path := resolved.EscapedPath()
		if path == "" {
			path = "/"
		}

		// Route on a copy, the escaped form goes into Path because httprouter matches on it
		r = r.Clone(r.Context())
		r.URL.Path = path
		r.URL.RawPath = ""
		r.URL.RawQuery = resolved.RawQuery
		r.URL.Fragment = ""
		r.URL.RawFragment = ""

		next.ServeHTTP(rw, r)
	})
}
