package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeStore struct {
	objects map[string]string
	failOn  int // fail the nth Put, 0 never fails
	puts    int
}

func (f *fakeStore) Put(ctx context.Context, objectPath, contentType string, r io.Reader, size int64) error {
	f.puts++
	if f.failOn != 0 && f.puts == f.failOn {
		return errors.New("backend unavailable")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if f.objects == nil {
		f.objects = make(map[string]string)
	}
	f.objects[objectPath] = string(data)
	return nil
}

func (f *fakeStore) PublicURL(objectPath string) string {
	return "http://localhost:8080/media/" + objectPath
}

type filePart struct {
	name, body string
}

func uploadRequest(t *testing.T, role string, files []filePart) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if role != "" {
		if err := w.WriteField("role", role); err != nil {
			t.Fatalf("write role: %v", err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile("files", f.name)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write([]byte(f.body)); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/uploads", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func uploadTestHandler(store *fakeStore) *Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if store == nil {
		// A typed nil would not compare equal to nil inside the handler.
		return NewHandler(nil, log)
	}
	return NewHandler(store, log)
}

func TestCreateStoresEveryFile(t *testing.T) {
	store := &fakeStore{}
	rec := httptest.NewRecorder()
	req := uploadRequest(t, "gallery", []filePart{
		{name: "a.jpg", body: "first"},
		{name: "b.mp4", body: "second"},
	})

	uploadTestHandler(store).Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp uploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.URLs) != 2 {
		t.Fatalf("expected 2 urls, got %v", resp.URLs)
	}
	for _, u := range resp.URLs {
		if !strings.HasPrefix(u, "http://localhost:8080/media/gallery/") {
			t.Errorf("url %q not under the gallery prefix", u)
		}
	}
	if resp.URLs[0] == resp.URLs[1] {
		t.Fatalf("object paths for one request must not collide: %v", resp.URLs)
	}
	if !strings.HasSuffix(resp.URLs[0], ".jpg") || !strings.HasSuffix(resp.URLs[1], ".mp4") {
		t.Fatalf("original extensions must survive: %v", resp.URLs)
	}
	if len(store.objects) != 2 {
		t.Fatalf("expected 2 stored objects, got %d", len(store.objects))
	}
}

func TestCreateFailureMidSequenceReportsStoredURLs(t *testing.T) {
	store := &fakeStore{failOn: 2}
	rec := httptest.NewRecorder()
	req := uploadRequest(t, "gallery", []filePart{
		{name: "a.jpg", body: "first"},
		{name: "b.jpg", body: "second"},
	})

	uploadTestHandler(store).Create(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}

	var resp struct {
		Error  string   `json:"error"`
		Failed string   `json:"failed"`
		URLs   []string `json:"urls"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Failed != "b.jpg" {
		t.Fatalf("expected the failing filename, got %q", resp.Failed)
	}
	if len(resp.URLs) != 1 || !strings.Contains(resp.URLs[0], "gallery/") {
		t.Fatalf("expected the one stored url, got %v", resp.URLs)
	}
	if len(store.objects) != 1 {
		t.Fatalf("the first file must stay stored, got %d objects", len(store.objects))
	}
}

func TestCreateRejectsInvalidRole(t *testing.T) {
	rec := httptest.NewRecorder()
	req := uploadRequest(t, "avatar", []filePart{{name: "a.jpg", body: "x"}})

	uploadTestHandler(&fakeStore{}).Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateRejectsEmptyFileList(t *testing.T) {
	rec := httptest.NewRecorder()
	req := uploadRequest(t, "gallery", nil)

	uploadTestHandler(&fakeStore{}).Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateWithoutStore(t *testing.T) {
	rec := httptest.NewRecorder()
	req := uploadRequest(t, "gallery", []filePart{{name: "a.jpg", body: "x"}})

	uploadTestHandler(nil).Create(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
