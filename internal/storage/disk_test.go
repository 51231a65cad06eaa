package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskPutAndPublicURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDisk(dir, "http://localhost:8080/media/")
	if err != nil {
		t.Fatalf("new disk: %v", err)
	}

	body := "fake image bytes"
	if err := store.Put(context.Background(), "gallery/1_gallery.jpg", "image/jpeg", strings.NewReader(body), int64(len(body))); err != nil {
		t.Fatalf("put: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "gallery", "1_gallery.jpg"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != body {
		t.Fatalf("stored bytes mismatch: %q", data)
	}

	url := store.PublicURL("gallery/1_gallery.jpg")
	if url != "http://localhost:8080/media/gallery/1_gallery.jpg" {
		t.Fatalf("unexpected public URL %q", url)
	}
}

func TestDiskPutRejectsTraversal(t *testing.T) {
	store, err := NewDisk(t.TempDir(), "http://localhost:8080/media")
	if err != nil {
		t.Fatalf("new disk: %v", err)
	}

	err = store.Put(context.Background(), "../escape.txt", "text/plain", strings.NewReader("x"), 1)
	if err == nil {
		t.Fatal("expected traversal path to be rejected")
	}
}

func TestDiskPutHonorsCancelledContext(t *testing.T) {
	store, err := NewDisk(t.TempDir(), "http://localhost:8080/media")
	if err != nil {
		t.Fatalf("new disk: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = store.Put(ctx, "gallery/1_gallery.jpg", "image/jpeg", strings.NewReader("x"), 1)
	if err == nil {
		t.Fatal("expected cancelled context to abort the write")
	}
}
