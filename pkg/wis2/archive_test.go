package wis2

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
)

func zipPayload(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDownloadArchive(t *testing.T) {
	payload := zipPayload(t, map[string]string{
		"records/urn-wmo-md-zm-zmd-synop.json": `{"id": "urn:wmo:md:zm-zmd:synop"}`,
	})

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/archive.zip":
			_, _ = w.Write(payload)
		default:
			fmt.Fprintf(w, `{"links": [
				{"rel": "self", "href": "%s"},
				{"rel": "archives", "href": "%s/archive.zip"}
			]}`, server.URL, server.URL)
		}
	}))
	defer server.Close()

	outDir := t.TempDir()
	client := NewClient(server.URL, 5*time.Second)

	if err := client.DownloadArchive(context.Background(), outDir); err != nil {
		t.Fatalf("DownloadArchive: %v", err)
	}

	extracted := filepath.Join(outDir, "records", "urn-wmo-md-zm-zmd-synop.json")
	data, err := os.ReadFile(extracted)
	if err != nil {
		t.Fatalf("extracted record missing: %v", err)
	}
	if !bytes.Contains(data, []byte("zm-zmd")) {
		t.Errorf("unexpected extracted content: %s", data)
	}
}

func TestDownloadArchiveNoLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"links": [{"rel": "self", "href": "https://example.org"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	if err := client.DownloadArchive(context.Background(), t.TempDir()); err == nil {
		t.Error("expected error when collection has no archives link")
	}
}
