package archive

import (
	"archive/tar"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
)

func buildZip(t *testing.T, files map[string]string) []byte {
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

func buildTarGz(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		hdr := &tar.Header{
			Typeflag: tar.TypeReg,
			Name:     name,
			Mode:     0o644,
			Size:     int64(len(content)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func assertFileContent(t *testing.T, path, expected string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if string(data) != expected {
		t.Errorf("%s = %q, want %q", path, data, expected)
	}
}

func TestExtractZip(t *testing.T) {
	payload := buildZip(t, map[string]string{
		"a.json":     `{"id": "a"}`,
		"sub/b.json": `{"id": "b"}`,
	})

	dir := t.TempDir()
	if err := Extract(payload, dir); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	assertFileContent(t, filepath.Join(dir, "a.json"), `{"id": "a"}`)
	assertFileContent(t, filepath.Join(dir, "sub", "b.json"), `{"id": "b"}`)
}

func TestExtractTarGz(t *testing.T) {
	payload := buildTarGz(t, map[string]string{
		"catalogue/rec.xml": "<record/>",
	})

	dir := t.TempDir()
	if err := Extract(payload, dir); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	assertFileContent(t, filepath.Join(dir, "catalogue", "rec.xml"), "<record/>")
}

func TestExtractTarGzDotPrefixedEntries(t *testing.T) {
	// tar -C dir -czf out.tgz . opens with a "./" entry naming the archive
	// root; it must map onto the target directory, not abort the run.
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	if err := tw.WriteHeader(&tar.Header{
		Typeflag: tar.TypeDir,
		Name:     "./",
		Mode:     0o755,
	}); err != nil {
		t.Fatal(err)
	}

	content := "<record/>"
	if err := tw.WriteHeader(&tar.Header{
		Typeflag: tar.TypeReg,
		Name:     "./rec.xml",
		Mode:     0o644,
		Size:     int64(len(content)),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := tw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}

	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	if err := Extract(buf.Bytes(), dir); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	assertFileContent(t, filepath.Join(dir, "rec.xml"), content)
}

func TestExtractUnknownFormat(t *testing.T) {
	err := Extract([]byte("neither zip nor gzip"), t.TempDir())
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestExtractRejectsEscapingEntries(t *testing.T) {
	payload := buildTarGz(t, map[string]string{
		"../evil.txt": "escaped",
	})

	if err := Extract(payload, t.TempDir()); err == nil {
		t.Error("expected error for entry escaping the target directory")
	}
}
