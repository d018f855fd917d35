package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrDescriptorDecode is returned when a descriptor is not valid YAML for
	// the Descriptor schema.
	ErrDescriptorDecode = errors.New("invalid catalog descriptor")
	// ErrEmptyName is returned when writing a descriptor without a name.
	ErrEmptyName = errors.New("descriptor has no metadata.name")
)

// Decode parses a single descriptor document from r.
func Decode(r io.Reader) (*Descriptor, error) {
	var d Descriptor

	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDescriptorDecode)
		}

		return nil, fmt.Errorf("%w: %w", ErrDescriptorDecode, err)
	}

	return &d, nil
}

// Encode writes d to w as YAML.
func Encode(w io.Writer, d *Descriptor) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding descriptor: %w", err)
	}

	return enc.Close()
}

// Path returns the descriptor location for a repository root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Exists reports whether root holds a descriptor file.
func Exists(root string) (bool, error) {
	_, err := os.Stat(Path(root))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("checking %s: %w", Path(root), err)
}

// Load reads and decodes the descriptor under root.
func Load(root string) (*Descriptor, error) {
	path := Path(root)

	f, err := os.Open(path) //nolint:gosec // path is built from the repository root
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	d, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return d, nil
}

// Write encodes d into the descriptor file under root, replacing any
// existing file.
func Write(root string, d *Descriptor) error {
	if d.Metadata.Name == "" {
		return ErrEmptyName
	}

	var buf bytes.Buffer
	if err := Encode(&buf, d); err != nil {
		return err
	}

	if err := os.WriteFile(Path(root), buf.Bytes(), 0o644); err != nil { //nolint:gosec // catalog files are world-readable
		return fmt.Errorf("writing %s: %w", Path(root), err)
	}

	return nil
}
