package main

import (
	"encoding/json"
	"net/http"
)

type envelope map[string]interface{}

// writeJSON encodes data compactly and sends it with the given status and extra headers.
// Encoding errors are returned before anything reaches rw, write errors are only logged
func (app *application) writeJSON(rw http.ResponseWriter, r *http.Request, status int, data interface{}, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	// Copy any extra headers into the response header map
	for key, value := range headers {
		rw.Header()[key] = value
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)

	// Status is already sent, a failed write can only be logged
	if _, err := rw.Write(js); err != nil {
		app.logError(r, err)
	}

	return nil
}

// writeText sends body as text/plain
func (app *application) writeText(rw http.ResponseWriter, r *http.Request, status int, body string) {
	rw.Header().Set("Content-Type", "text/plain")
	rw.WriteHeader(status)

	if _, err := rw.Write([]byte(body)); err != nil {
		app.logError(r, err)
	}
}
