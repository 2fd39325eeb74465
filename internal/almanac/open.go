package almanac

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Load opens path and parses it with the layout implied by its extension.
func Load(path string) (*Document, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	if IsYAML(path) {
		return ParseYAML(rc, path)
	}
	return Parse(rc, path)
}

// IsYAML reports whether path names a YAML almanac, ignoring a .gz suffix.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(strings.TrimSuffix(path, ".gz"))) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// readCloser closes every closer in order, reporting the first failure.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader handles "-" for stdin and gzip, detected by suffix or by the
// 1f 8b magic number.
func openReader(path string) (io.ReadCloser, error) {
	var src io.ReadCloser = io.NopCloser(os.Stdin)
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src = fh
	}
	br := bufio.NewReader(src)
	sig, _ := br.Peek(2)
	if !strings.HasSuffix(path, ".gz") && !(len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) {
		return &readCloser{Reader: br, closers: []io.Closer{src}}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &readCloser{Reader: gr, closers: []io.Closer{gr, src}}, nil
}
