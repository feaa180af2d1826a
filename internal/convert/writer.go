package convert

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// WriteBundle serializes a bundle to disk as indented JSON. A path ending in
// .gz, or compress=true, gzips the payload.
func WriteBundle(path string, bundle any, compress bool) error {
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal bundle: %w", err)
	}

	if !compress && !strings.HasSuffix(path, ".gz") {
		return os.WriteFile(path, data, 0644)
	}

	if !strings.HasSuffix(path, ".gz") {
		path += ".gz"
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := gzip.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("write bundle: %w", err)
	}
	if err := w.Close(); err != nil {
		return err
	}

	return f.Close()
}
