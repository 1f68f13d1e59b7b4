// Package archive extracts the bulk catalogue payloads wiscat downloads:
// the WIS 1.0 catalogue ships as a gzipped tar, the WIS2 metadata archive
// as a zipfile. Payload kind is detected from magic bytes.
package archive

import (
	"archive/tar"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
)

var (
	zipMagic  = []byte{'P', 'K', 0x03, 0x04}
	gzipMagic = []byte{0x1f, 0x8b}
)

// ErrUnknownFormat is returned when a payload is neither a zipfile nor a
// gzipped tar.
var ErrUnknownFormat = errors.New("unknown archive format")

// Extract writes the contents of data, a zip or gzipped tar payload, under
// dir.
func Extract(data []byte, dir string) error {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return ExtractZip(data, dir)
	case bytes.HasPrefix(data, gzipMagic):
		return ExtractTarGz(bytes.NewReader(data), dir)
	default:
		return ErrUnknownFormat
	}
}

// ExtractZip extracts a zipfile payload under dir.
func ExtractZip(data []byte, dir string) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("opening zipfile: %w", err)
	}

	for _, f := range zr.File {
		target, err := securePath(dir, f.Name)
		if err != nil {
			return err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("opening %s in zipfile: %w", f.Name, err)
		}
		err = writeFile(target, rc)
		_ = rc.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

// ExtractTarGz extracts a gzipped tar stream under dir.
func ExtractTarGz(r io.Reader, dir string) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("opening gzip stream: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading tar stream: %w", err)
		}

		target, err := securePath(dir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := writeFile(target, tr); err != nil {
				return err
			}
		}
	}
}

// securePath joins name onto dir, rejecting entries that would escape it.
// An entry naming the archive root itself ("./", the first entry of tars
// built with `tar -C dir .`) maps onto dir.
func securePath(dir, name string) (string, error) {
	clean := filepath.Clean(name)
	if clean == "." {
		return filepath.Clean(dir), nil
	}
	target := filepath.Join(dir, clean)
	if !strings.HasPrefix(target, filepath.Clean(dir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes target directory", name)
	}
	return target, nil
}

func writeFile(target string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return f.Close()
}
