// Package bundle packages a generated site for download or deployment.
package bundle

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pthm/pagecraft/lib/generator"
)

// ArchiveName is the default file name of the zip archive.
const ArchiveName = "website.zip"

// modTime is stamped on every archive entry so equal bundles produce equal
// archives.
var modTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// File is one named file of a bundle.
type File struct {
	Name    string
	Content string
}

// Files returns the bundle's files in archive order.
func Files(b generator.Bundle) []File {
	return []File{
		{Name: generator.HTMLFile, Content: b.HTML},
		{Name: generator.CSSFile, Content: b.CSS},
		{Name: generator.JSFile, Content: b.JS},
	}
}

// WriteZip writes b to w as a zip archive.
func WriteZip(w io.Writer, b generator.Bundle) error {
	return writeZip(context.Background(), w, b)
}

// Zip returns b as zip archive bytes.
func Zip(b generator.Bundle) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteZip(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeZip(ctx context.Context, w io.Writer, b generator.Bundle) error {
	zw := zip.NewWriter(w)
	for _, f := range Files(b) {
		if err := ctx.Err(); err != nil {
			return err
		}
		hdr := &zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: modTime,
		}
		hdr.SetMode(0o644)
		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("create %s: %w", f.Name, err)
		}
		if _, err := io.WriteString(fw, f.Content); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
	}
	return zw.Close()
}

// Exporter publishes a generated bundle somewhere.
type Exporter interface {
	Export(ctx context.Context, b generator.Bundle) error
}

// ZipFile exports the bundle as a zip archive at Path.
type ZipFile struct {
	Path string
}

// Export writes the archive, replacing any existing file.
func (z ZipFile) Export(ctx context.Context, b generator.Bundle) error {
	path := z.Path
	if path == "" {
		path = ArchiveName
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	if err := writeZip(ctx, f, b); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// Directory exports the bundle as loose files under Path.
type Directory struct {
	Path string
}

// Export writes each file into the directory, creating it if needed.
func (d Directory) Export(ctx context.Context, b generator.Bundle) error {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, f := range Files(b) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(d.Path, f.Name), []byte(f.Content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
	}
	return nil
}

var (
	_ Exporter = ZipFile{}
	_ Exporter = Directory{}
)
