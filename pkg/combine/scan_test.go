package combine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanExtensions(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.CS":          "",
		"b.cs":          "",
		"c.bin":         "",
		"Makefile":      "",
		"sub/e.Md":      "",
		"sub/deep/f.go": "",
		"img/logo.png":  "",
	})

	exts, err := ScanExtensions(context.Background(), root, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{".cs", ".go", ".md"}, exts)
}

func TestScanExtensionsEmptyTree(t *testing.T) {
	exts, err := ScanExtensions(context.Background(), t.TempDir(), Options{})
	require.NoError(t, err)
	assert.NotNil(t, exts)
	assert.Empty(t, exts)
}

func TestScanExtensionsInvalidRoot(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	for _, path := range []string{"", filepath.Join(root, "missing"), file} {
		_, err := ScanExtensions(context.Background(), path, Options{})
		assert.ErrorIs(t, err, ErrPathInvalid, "path %q", path)
	}
}

func TestScanExtensionsDoesNotFollowSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeTree(t, root, map[string]string{"sub/x.go": ""})
	writeTree(t, outside, map[string]string{"only_outside.rs": "", "linked.txt": ""})

	if err := os.Symlink(root, filepath.Join(root, "sub", "loop")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "external")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "linked.txt"), filepath.Join(root, "file-link.txt")))

	exts, err := ScanExtensions(context.Background(), root, Options{})
	require.NoError(t, err)
	// .txt comes from the symlinked file; .rs lives only behind the directory link.
	assert.Equal(t, []string{".go", ".txt"}, exts)
}

func TestScanExtensionsUnreadableSubdirectory(t *testing.T) {
	skipIfRoot(t)

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"ok/a.go":     "",
		"locked/b.py": "",
	})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	t.Run("best effort skips the subtree", func(t *testing.T) {
		exts, err := ScanExtensions(context.Background(), root, Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{".go"}, exts)
	})

	t.Run("fail fast aborts", func(t *testing.T) {
		_, err := ScanExtensions(context.Background(), root, Options{FailFast: true})
		assert.ErrorIs(t, err, ErrTraversal)
	})
}

func TestScanExtensionsCancelled(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.go": ""})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ScanExtensions(ctx, root, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
