// Package output writes generated units to their destination.
package output

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/txtar"
)

// Unit is one generated file. Name is slash-separated and relative.
type Unit struct {
	Name    string
	Content string
}

type Writer interface {
	Write(u Unit) error
	Close() error
}

// DirWriter writes each unit below a root directory.
type DirWriter struct {
	root string
}

func NewDirWriter(root string) *DirWriter {
	return &DirWriter{root: root}
}

func (w *DirWriter) Write(u Unit) error {
	path := filepath.Join(w.root, filepath.FromSlash(u.Name))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.Wrapf(err, "failed to create output directory for %s", u.Name)
	}
	if err := os.WriteFile(path, []byte(u.Content), 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", u.Name)
	}
	return nil
}

func (*DirWriter) Close() error {
	return nil
}

// BundleWriter collects units into a single txtar archive written on Close.
type BundleWriter struct {
	path    string
	archive txtar.Archive
}

func NewBundleWriter(path string) *BundleWriter {
	return &BundleWriter{path: path}
}

func (w *BundleWriter) Write(u Unit) error {
	w.archive.Files = append(w.archive.Files, txtar.File{Name: u.Name, Data: []byte(u.Content)})
	return nil
}

func (w *BundleWriter) Close() error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.Wrap(err, "failed to create bundle directory")
		}
	}
	if err := os.WriteFile(w.path, txtar.Format(&w.archive), 0o600); err != nil {
		return errors.Wrapf(err, "failed to write bundle %s", w.path)
	}
	return nil
}

// ReadBundle returns the units stored in a bundle written by BundleWriter.
func ReadBundle(path string) ([]Unit, error) {
	ar, err := txtar.ParseFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read bundle %s", path)
	}
	units := make([]Unit, 0, len(ar.Files))
	for _, f := range ar.Files {
		units = append(units, Unit{Name: f.Name, Content: string(f.Data)})
	}
	return units, nil
}

// WriteAll writes every unit and closes w.
func WriteAll(w Writer, units []Unit) error {
	for _, u := range units {
		if err := w.Write(u); err != nil {
			return err
		}
	}
	return w.Close()
}
