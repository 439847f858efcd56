package main

import (
	"net/http"
)

// Generic helper method for logging error messages with the request that caused them
func (app *application) logError(r *http.Request, err error) {
	app.logger.PrintError(err, map[string]string{
		"request_method": r.Method,
		"request_url":    r.URL.String(),
	})
}

// Generic helper method for sending JSON-formatted error messages to client
func (app *application) errorResponse(rw http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := envelope{"error": message}

	err := app.writeJSON(rw, r, status, env, nil)
	if err != nil {
		app.logError(r, err)
		rw.WriteHeader(http.StatusInternalServerError)
	}
}

// Method for unexpected problems at runtime
func (app *application) serverErrorResponse(rw http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	message := "the server encountered a problem and could not process your request"
	app.errorResponse(rw, r, http.StatusInternalServerError, message)
}

// 404 Not Found, plain text rather than JSON
func (app *application) notFoundResponse(rw http.ResponseWriter, r *http.Request) {
	app.writeText(rw, r, http.StatusNotFound, "Not Found\n")
}
