package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BunnyTheLifeguard/hcomp/internal/data"
	"github.com/BunnyTheLifeguard/hcomp/internal/jsonlog"
	"github.com/stretchr/testify/require"
)

// newTestApplication builds an application logging into the returned buffer.
// A nil pick uses the real random source
func newTestApplication(t *testing.T, version string, pick func(int) int) (*application, *bytes.Buffer) {
	t.Helper()

	phrases, err := data.NewPhraseSet(data.DefaultPhrases(), pick)
	require.NoError(t, err)

	var buf bytes.Buffer
	app := &application{
		config:  config{port: 8080, version: version},
		logger:  jsonlog.New(&buf, jsonlog.LevelInfo),
		phrases: phrases,
	}

	return app, &buf
}

func do(t *testing.T, h http.Handler, method, target string) (*http.Response, string) {
	t.Helper()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, nil))

	res := rr.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()

	return res, string(body)
}

func decodePayload(t *testing.T, body string) map[string]string {
	t.Helper()

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &payload), "body %q", body)

	return payload
}
