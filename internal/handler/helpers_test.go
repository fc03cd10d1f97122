package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pingroom/internal/app/session"
	"pingroom/internal/configs"
)

// testDeps builds AppDeps with a freshly seeded store and a development config.
// The relay client is left nil; relay tests wire their own.
func testDeps() *AppDeps {
	return &AppDeps{
		Store: session.New(),
		Config: &configs.AppConfig{
			Environment: "development",
			Port:        8080,
			JWTSecret:   "test-secret",
			GroqTimeout: 5 * time.Second,
		},
	}
}

// postJSON invokes a handler directly with a JSON body, bypassing router middleware.
func postJSON(t *testing.T, handlerFunc http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handlerFunc(w, r)
	return w
}

// envelope mirrors resp.JSONResponse with the payload left raw for per-test decoding.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var e envelope
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("failed to decode response envelope %q: %v", w.Body.String(), err)
	}
	return e
}

func decodeData(t *testing.T, e envelope, dst any) {
	t.Helper()

	if err := json.Unmarshal(e.Data, dst); err != nil {
		t.Fatalf("failed to decode envelope data %s: %v", e.Data, err)
	}
}
