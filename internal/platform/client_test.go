package platform_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/oauth2"

	"github.com/StefanSilver/dtlpy/internal/platform"
	pkgErrors "github.com/StefanSilver/dtlpy/pkg/errors"
	"github.com/StefanSilver/dtlpy/pkg/log"
)

func TestClient(t *testing.T) {
	var lastAuth, lastRequestID string

	mux := http.NewServeMux()
	mux.HandleFunc("/things", func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		lastRequestID = r.Header.Get("X-Request-Id")

		if r.Method == http.MethodPost {
			var in map[string]string
			json.NewDecoder(r.Body).Decode(&in)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"id": "1", "name": in["name"]})
			return
		}
		json.NewEncoder(w).Encode([]map[string]string{{"id": "1"}})
	})
	mux.HandleFunc("/things/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"error_code": 404, "message": "thing not found"})
	})
	mux.HandleFunc("/things/secret", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("no access"))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := platform.NewClient(platform.Options{
		BaseURL: ts.URL,
		TokenSource: oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: "test-token",
			TokenType:   "Bearer",
		}),
	}, log.NewNop())
	ctx := context.Background()

	t.Run("GetJSON", func(t *testing.T) {
		var out []map[string]string
		if err := client.GetJSON(ctx, "/things", nil, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0]["id"] != "1" {
			t.Errorf("unexpected response: %+v", out)
		}
		if lastAuth != "Bearer test-token" {
			t.Errorf("unexpected Authorization header: %q", lastAuth)
		}
		if lastRequestID == "" {
			t.Error("expected X-Request-Id header to be set")
		}
	})

	t.Run("PostJSON", func(t *testing.T) {
		var out map[string]string
		err := client.PostJSON(ctx, "/things", map[string]string{"name": "a"}, &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out["name"] != "a" {
			t.Errorf("unexpected response: %+v", out)
		}
	})

	t.Run("NotFoundMapping", func(t *testing.T) {
		err := client.GetJSON(ctx, "/things/missing", nil, &struct{}{})
		if !errors.Is(err, pkgErrors.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got: %v", err)
		}
		if !strings.Contains(err.Error(), "thing not found") {
			t.Errorf("expected envelope message in error, got: %v", err)
		}
	})

	t.Run("ForbiddenMapping", func(t *testing.T) {
		err := client.GetJSON(ctx, "/things/secret", nil, &struct{}{})
		if !errors.Is(err, pkgErrors.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got: %v", err)
		}
	})

	t.Run("MultipartTransferError", func(t *testing.T) {
		badClient := platform.NewClient(platform.Options{BaseURL: "http://localhost:59999"}, log.NewNop())
		err := badClient.PostMultipart(ctx, "/upload", "file", "a.jpg", strings.NewReader("x"), nil)
		if !errors.Is(err, pkgErrors.ErrTransfer) {
			t.Fatalf("expected ErrTransfer, got: %v", err)
		}
	})

	// Server Down
	t.Run("Server Down", func(t *testing.T) {
		badClient := platform.NewClient(platform.Options{BaseURL: "http://localhost:59999"}, log.NewNop())
		if err := badClient.GetJSON(ctx, "/things", nil, &struct{}{}); err == nil {
			t.Error("expected connection refused error")
		}
	})
}
