// Package testutil holds helpers shared by tests that work on fixture trees.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTree creates a temporary directory holding files, keyed by slash
// separated paths relative to it, and returns its path.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// ReadFile returns the content of the file at the slash separated path rel
// under root.
func ReadFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

// Exists reports whether anything exists at rel under root.
func Exists(t *testing.T, root, rel string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	if os.IsNotExist(err) {
		return false
	}
	require.NoError(t, err)
	return true
}

// StatusLine formats a report line the way the pipeline prints it without
// colors.
func StatusLine(status, name string) string {
	label := strings.ToUpper(status)
	return label + strings.Repeat(" ", max(0, len("UNCHANGED")-len(label))) + " " + name
}
