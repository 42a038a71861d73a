package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LockFile is the name of the lock file held in a data directory while writing.
const LockFile = ".ply.lock"

// Record is a value that can be persisted as document frontmatter.
type Record[T any] interface {
	// Filename derives the file name the record is stored under.
	Filename() string
	// Canonical returns the record normalized for serialization.
	Canonical() T
	Validate() error
}

// Document pairs a record with a free text body.
type Document[T Record[T]] struct {
	Record  T
	Content string
}

// Read loads the document stored at path.
func Read[T Record[T]](path string) (*Document[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Op: "read", Path: path, Cause: err}
	}
	doc, err := Parse[T](string(data))
	if err != nil {
		return nil, &Error{Op: "read", Path: path, Cause: err}
	}
	return doc, nil
}

// Parse decodes a serialized document. Unknown frontmatter fields are an error.
func Parse[T Record[T]](data string) (*Document[T], error) {
	frontmatter, content, err := split(data)
	if err != nil {
		return nil, err
	}

	var record T
	dec := yaml.NewDecoder(strings.NewReader(frontmatter))
	dec.KnownFields(true)
	if err := dec.Decode(&record); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty frontmatter", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return &Document[T]{Record: record, Content: content}, nil
}

// Marshal serializes the document. The record is canonicalized and validated first.
func (d Document[T]) Marshal() ([]byte, error) {
	record := d.Record.Canonical()
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("invalid record: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(record); err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	buf.WriteString(delimiter + "\n\n")
	buf.WriteString(d.Content)
	return buf.Bytes(), nil
}

// WriteNew stores the document in dir under the record's filename and fails if that file
// already exists. The returned error wraps fs.ErrExist in that case.
func (d Document[T]) WriteNew(dir string) (string, error) {
	path := filepath.Join(dir, d.Record.Filename())
	data, err := d.Marshal()
	if err != nil {
		return "", &Error{Op: "write_new", Path: path, Cause: err}
	}

	unlock, err := lockDirectory(dir)
	if err != nil {
		return "", &Error{Op: "write_new", Path: path, Cause: err}
	}
	defer unlock()

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", &Error{Op: "write_new", Path: path, Cause: err}
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", &Error{Op: "write_new", Path: path, Cause: err}
	}
	if err := f.Close(); err != nil {
		return "", &Error{Op: "write_new", Path: path, Cause: err}
	}
	return path, nil
}

// Write stores the document in dir under the record's filename, replacing any existing
// file. The new contents are written to a temporary file and renamed into place.
func (d Document[T]) Write(dir string) (string, error) {
	path := filepath.Join(dir, d.Record.Filename())
	if err := d.replace("write", path); err != nil {
		return "", err
	}
	return path, nil
}

// Overwrite replaces the file at path, whatever its name, the same way Write does. It is
// used to update a document in place after it was read from path.
func (d Document[T]) Overwrite(path string) error {
	return d.replace("overwrite", path)
}

func (d Document[T]) replace(op, path string) error {
	data, err := d.Marshal()
	if err != nil {
		return &Error{Op: op, Path: path, Cause: err}
	}

	dir := filepath.Dir(path)
	unlock, err := lockDirectory(dir)
	if err != nil {
		return &Error{Op: op, Path: path, Cause: err}
	}
	defer unlock()

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		_ = os.Remove(tmp)
		return &Error{Op: op, Path: path, Cause: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &Error{Op: op, Path: path, Cause: err}
	}
	return nil
}

// lockDirectory creates dir if needed and takes its write lock.
func lockDirectory(dir string) (func(), error) {
	if err := ensureDirectory(dir); err != nil {
		return nil, err
	}
	lock := flock.New(filepath.Join(dir, LockFile))
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", dir, err)
	}
	return func() { _ = lock.Unlock() }, nil
}

func ensureDirectory(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	case err == nil:
		return nil
	case errors.Is(err, os.ErrNotExist):
		return os.MkdirAll(dir, 0755)
	default:
		return err
	}
}
