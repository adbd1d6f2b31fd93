package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "github.com/StefanSilver/dtlpy/pkg/errors"
	"github.com/StefanSilver/dtlpy/pkg/response"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	return resp
}

func TestOK(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.OK(c, gin.H{"hello": "world"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decode(t, w)
	if resp.ErrorCode != 0 || resp.Message != response.MessageSuccess {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestErrorWithHTTPError(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusConflict, "name already exists"))
	})

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	resp := decode(t, w)
	if resp.Message != "name already exists" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestErrorWithPlainError(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.Error(c, errors.New("boom"))
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestNotFound(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.NotFound(c, "item not found")
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	resp := decode(t, w)
	if resp.Message != "item not found" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}
