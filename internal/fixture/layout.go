package fixture

import (
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/graphfix/internal/fsutil"
)

// Layout names the files of a fixture, relative to its directory.
type Layout struct {
	InputName    string // Script under test, copied verbatim.
	SourceName   string // Editor document or "ERROR: <message>".
	ExpectedPath string // Canonical document; may include subdirectories.
}

// DefaultLayout returns the layout used by the compiler's test suite.
func DefaultLayout() Layout {
	return Layout{
		InputName:    "input.txt",
		SourceName:   "expected.txt",
		ExpectedPath: "expected.json",
	}
}

// Case is one fixture directory.
type Case struct {
	Name   string
	Dir    string
	Layout Layout
}

// InputPath returns the path of the script under test.
func (c Case) InputPath() string { return filepath.Join(c.Dir, c.Layout.InputName) }

// SourcePath returns the path of the editor-format source.
func (c Case) SourcePath() string { return filepath.Join(c.Dir, c.Layout.SourceName) }

// ExpectedPath returns the path of the canonical document.
func (c Case) ExpectedPath() string {
	return filepath.Join(c.Dir, filepath.FromSlash(c.Layout.ExpectedPath))
}

// Under returns the same fixture placed under another root.
func (c Case) Under(root string) Case {
	c.Dir = filepath.Join(root, c.Name)
	return c
}

// Discover lists every fixture directory directly under root, sorted by name.
func Discover(root string, layout Layout) ([]Case, error) {
	names, err := fsutil.ListDirs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures in %s: %w", root, err)
	}

	cases := make([]Case, len(names))
	for i, name := range names {
		cases[i] = Case{Name: name, Dir: filepath.Join(root, name), Layout: layout}
	}
	return cases, nil
}
