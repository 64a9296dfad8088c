package summary

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// openInput opens a local input file, transparently decompressing when
// the path ends in .gz. Live basecalling runs commonly ship their
// summaries gzipped.
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputNotFoundError{Path: path, Err: err}
	}

	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open gzip stream %s: %w", path, err)
		}
		return &gzipInput{gz: gz, file: f}, nil
	}

	return f, nil
}

type gzipInput struct {
	gz   *gzip.Reader
	file *os.File
}

func (g *gzipInput) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzipInput) Close() error {
	gzErr := g.gz.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return gzErr
}
