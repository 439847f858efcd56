package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Methods are not discriminated, every route answers all of these the same way
var routeMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodConnect,
	http.MethodTrace,
}

func (app *application) routes() http.Handler {
	router := httprouter.New()

	// Exact path matches only: no redirects and no automatic OPTIONS replies
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.HandleOPTIONS = false

	// Unknown paths get the plain-text 404
	router.NotFound = http.HandlerFunc(app.notFoundResponse)

	// Methods httprouter has no tree for fall through to the GET handle of the same path
	router.MethodNotAllowed = app.anyMethod(router)

	// Register every route for every method, "/" and "/version" share a handler
	for _, method := range routeMethods {
		router.HandlerFunc(method, "/", app.phraseHandler)
		router.HandlerFunc(method, "/version", app.phraseHandler)
		router.HandlerFunc(method, "/health", app.healthHandler)
	}

	// Panic recovery wraps target resolution, which wraps the router
	return app.recoverPanic(app.resolveTarget(router))
}

// anyMethod handles methods outside routeMethods by serving whatever GET serves on the same path
func (app *application) anyMethod(router *httprouter.Router) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		// httprouter sets Allow before calling this handler
		rw.Header().Del("Allow")

		// Look up the handle registered for GET on the same path
		handle, ps, _ := router.Lookup(http.MethodGet, r.URL.Path)
		if handle == nil {
			app.notFoundResponse(rw, r)
			return
		}

		handle(rw, r, ps)
	})
}
