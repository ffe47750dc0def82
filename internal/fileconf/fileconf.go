// Package fileconf decodes the registry files (sources, publishers) written
// as YAML or JSON.
package fileconf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type decoder struct {
	name string
	exts []string
	fn   func([]byte, any) error
}

var decoders = []decoder{
	{name: "yaml", exts: []string{".yaml", ".yml"}, fn: yaml.Unmarshal},
	{name: "json", exts: []string{".json"}, fn: json.Unmarshal},
}

// Load reads path and decodes it into T. The file extension selects the
// format; a file without one is tried as YAML, then JSON. what names the file
// in error messages.
func Load[T any](path, what string) (T, error) {
	var zero T
	path = strings.TrimSpace(path)
	if path == "" {
		return zero, fmt.Errorf("%s file path is empty", what)
	}

	file, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("open %s file: %w", what, err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return zero, fmt.Errorf("read %s file: %w", what, err)
	}
	return Decode[T](raw, filepath.Ext(path), what)
}

// Decode decodes data into T using the format implied by ext.
func Decode[T any](data []byte, ext, what string) (T, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	var errs []error
	for _, d := range decoders {
		if ext != "" && !d.handles(ext) {
			continue
		}
		var out T
		if err := d.fn(data, &out); err != nil {
			errs = append(errs, fmt.Errorf("decode %s %s: %w", d.name, what, err))
			continue
		}
		return out, nil
	}

	var zero T
	if len(errs) == 0 {
		return zero, fmt.Errorf("%s file extension %q not supported (expected YAML or JSON)", what, ext)
	}
	return zero, errors.Join(errs...)
}

func (d decoder) handles(ext string) bool {
	for _, e := range d.exts {
		if e == ext {
			return true
		}
	}
	return false
}
