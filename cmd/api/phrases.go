package main

import (
	"net/http"
)

// Handler for "/" and "/version"
func (app *application) phraseHandler(rw http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(rw, r, http.StatusOK, app.phrases.NewPayload(app.config.version), nil)
	if err != nil {
		app.serverErrorResponse(rw, r, err)
	}
}

// Handler for "/health", same payload plus status
func (app *application) healthHandler(rw http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(rw, r, http.StatusOK, app.phrases.NewHealthPayload(app.config.version), nil)
	if err != nil {
		app.serverErrorResponse(rw, r, err)
	}
}
