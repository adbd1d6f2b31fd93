package fakeplatform_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/StefanSilver/dtlpy/internal/fakeplatform"
	"github.com/StefanSilver/dtlpy/pkg/log"
)

func newServer(t *testing.T) (*fakeplatform.Server, *httptest.Server) {
	t.Helper()
	srv, err := fakeplatform.New(fakeplatform.Config{Logger: log.NewNop(), Mode: gin.TestMode})
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	ts := httptest.NewServer(srv.Engine())
	t.Cleanup(ts.Close)
	return srv, ts
}

func postJSON(t *testing.T, url string, body any, out any) int {
	t.Helper()
	raw, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if out != nil {
		json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode
}

func uploadFile(t *testing.T, url, filename string, content []byte) (fakeplatform.Item, int) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", filename)
	fw.Write(content)
	mw.Close()

	resp, err := http.Post(url, mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	defer resp.Body.Close()

	var item fakeplatform.Item
	json.NewDecoder(resp.Body).Decode(&item)
	return item, resp.StatusCode
}

func TestServer(t *testing.T) {
	_, ts := newServer(t)

	var project fakeplatform.Project
	if code := postJSON(t, ts.URL+"/projects", map[string]string{"name": "proj"}, &project); code != http.StatusCreated {
		t.Fatalf("expected 201 creating project, got %d", code)
	}

	var dataset fakeplatform.Dataset
	if code := postJSON(t, ts.URL+"/projects/"+project.ID+"/datasets", map[string]string{"name": "ds"}, &dataset); code != http.StatusCreated {
		t.Fatalf("expected 201 creating dataset, got %d", code)
	}

	itemsURL := fmt.Sprintf("%s/datasets/%s/items", ts.URL, dataset.ID)

	t.Run("UploadAssignsID", func(t *testing.T) {
		item, code := uploadFile(t, itemsURL, "test_item.jpg", []byte("bytes"))
		if code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", code)
		}
		if item.ID == "" || item.Name != "test_item.jpg" || item.Size != 5 {
			t.Errorf("unexpected item: %+v", item)
		}
	})

	t.Run("ListPagination", func(t *testing.T) {
		resp, err := http.Get(itemsURL + "?limit=10&offset=0")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		var page struct {
			Items []fakeplatform.Item `json:"items"`
			Total int                 `json:"total"`
		}
		json.NewDecoder(resp.Body).Decode(&page)
		if page.Total != 1 || len(page.Items) != 1 {
			t.Errorf("unexpected page: %+v", page)
		}
	})

	t.Run("DeleteMissingItemIs404", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodDelete, itemsURL+"/nope", nil)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}

		raw, _ := io.ReadAll(resp.Body)
		var envelope struct {
			Message string `json:"message"`
		}
		json.Unmarshal(raw, &envelope)
		if envelope.Message != "item not found" {
			t.Errorf("unexpected error envelope: %s", raw)
		}
	})

	t.Run("UploadToMissingDatasetIs404", func(t *testing.T) {
		_, code := uploadFile(t, ts.URL+"/datasets/ghost/items", "a.jpg", []byte("x"))
		if code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", code)
		}
	})

	t.Run("ProjectDeleteCascades", func(t *testing.T) {
		srv2, ts2 := newServer(t)

		var p fakeplatform.Project
		postJSON(t, ts2.URL+"/projects", map[string]string{"name": "cascade"}, &p)
		var d fakeplatform.Dataset
		postJSON(t, ts2.URL+"/projects/"+p.ID+"/datasets", map[string]string{"name": "ds"}, &d)
		item, _ := uploadFile(t, fmt.Sprintf("%s/datasets/%s/items", ts2.URL, d.ID), "x.jpg", []byte("x"))

		req, _ := http.NewRequest(http.MethodDelete, ts2.URL+"/projects/"+p.ID, nil)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()

		if _, ok := srv2.Store().GetDataset(d.ID); ok {
			t.Error("expected dataset to be removed with its project")
		}
		if _, ok := srv2.Store().GetItem(d.ID, item.ID); ok {
			t.Error("expected item to be removed with its project")
		}
	})
}
