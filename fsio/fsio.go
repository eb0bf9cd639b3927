// Package fsio provides filesystem operations for purepath.Path values.
//
// Every function takes an explicit afero.Fs, so the same code runs against
// the real filesystem (afero.NewOsFs) or an in-memory one in tests. There
// is no filesystem-capable path subtype: any Path works with any Fs, and a
// path that never touches a filesystem costs nothing.
package fsio

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/joshuapare/pathkit/purepath"
)

// Exists reports whether the path exists on fs.
func Exists(fs afero.Fs, p purepath.Path) (bool, error) {
	return afero.Exists(fs, p.String())
}

// IsDir reports whether the path is an existing directory.
func IsDir(fs afero.Fs, p purepath.Path) (bool, error) {
	return afero.DirExists(fs, p.String())
}

// IsFile reports whether the path is an existing regular file.
func IsFile(fs afero.Fs, p purepath.Path) (bool, error) {
	info, err := fs.Stat(p.String())
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// Stat returns file info for the path.
func Stat(fs afero.Fs, p purepath.Path) (os.FileInfo, error) {
	return fs.Stat(p.String())
}

// ReadFile reads the file's entire contents.
func ReadFile(fs afero.Fs, p purepath.Path) ([]byte, error) {
	data, err := afero.ReadFile(fs, p.String())
	if err != nil {
		return nil, errors.WithMessage(err, "reading file")
	}
	return data, nil
}

// WriteFile writes data to the file, creating it if needed.
func WriteFile(fs afero.Fs, p purepath.Path, data []byte, perm os.FileMode) error {
	return errors.WithMessage(afero.WriteFile(fs, p.String(), data, perm), "writing file")
}

// Touch creates the file if absent and updates its timestamps otherwise.
func Touch(fs afero.Fs, p purepath.Path) error {
	f, err := fs.OpenFile(p.String(), os.O_CREATE|os.O_WRONLY, 0o666)
	if err != nil {
		return errors.WithMessage(err, "touching file")
	}
	return f.Close()
}

// Mkdir creates the directory. Parents must already exist.
func Mkdir(fs afero.Fs, p purepath.Path, perm os.FileMode) error {
	return fs.Mkdir(p.String(), perm)
}

// MkdirAll creates the directory and any missing parents.
func MkdirAll(fs afero.Fs, p purepath.Path, perm os.FileMode) error {
	return fs.MkdirAll(p.String(), perm)
}

// Remove removes the file or empty directory.
func Remove(fs afero.Fs, p purepath.Path) error {
	return fs.Remove(p.String())
}

// RemoveAll removes the path and everything below it.
func RemoveAll(fs afero.Fs, p purepath.Path) error {
	return fs.RemoveAll(p.String())
}

// Rename moves the path to target and returns target.
func Rename(fs afero.Fs, p, target purepath.Path) (purepath.Path, error) {
	if err := fs.Rename(p.String(), target.String()); err != nil {
		return purepath.Path{}, errors.WithMessage(err, "renaming")
	}
	return target, nil
}

// ReadDir lists the directory's entries as paths joined onto p.
func ReadDir(fs afero.Fs, p purepath.Path) ([]purepath.Path, error) {
	infos, err := afero.ReadDir(fs, p.String())
	if err != nil {
		return nil, errors.WithMessage(err, "reading directory")
	}
	out := make([]purepath.Path, 0, len(infos))
	for _, info := range infos {
		out = append(out, p.Join(info.Name()))
	}
	return out, nil
}

// Glob returns the paths matching pattern, resolved relative to p.
func Glob(fs afero.Fs, p purepath.Path, pattern string) ([]purepath.Path, error) {
	matches, err := afero.Glob(fs, p.Join(pattern).String())
	if err != nil {
		return nil, errors.WithMessage(err, "globbing")
	}
	out := make([]purepath.Path, 0, len(matches))
	for _, m := range matches {
		out = append(out, purepath.New(p.Allocator(), m))
	}
	return out, nil
}
