package testutil_test

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/arthur-debert/futils/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaultFS(t *testing.T) {
	fsys := testutil.NewFaultFS(nil)
	testutil.WriteFile(t, fsys, "/data/a.txt", []byte("abc"))
	testutil.WriteFile(t, fsys, "/data/b.txt", []byte("def"))

	t.Run("passes_through_by_default", func(t *testing.T) {
		f, err := fsys.Open("/data/a.txt")
		require.NoError(t, err)
		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "abc", string(content))
		assert.Equal(t, 1, fsys.OpenHandles())
		require.NoError(t, f.Close())
		assert.Equal(t, 0, fsys.OpenHandles())
	})

	t.Run("injected_open_error", func(t *testing.T) {
		fsys.FailOpen("/data/a.txt", fs.ErrPermission)
		_, err := fsys.Open("/data/a.txt")
		assert.ErrorIs(t, err, fs.ErrPermission)

		// Stat still works so size-based checks are unaffected
		info, err := fsys.Stat("/data/a.txt")
		require.NoError(t, err)
		assert.Equal(t, int64(3), info.Size())
	})

	t.Run("injected_read_error", func(t *testing.T) {
		ioErr := errors.New("device removed")
		fsys.FailRead("/data/b.txt", ioErr)
		f, err := fsys.Open("/data/b.txt")
		require.NoError(t, err)
		_, err = f.Read(make([]byte, 1))
		assert.ErrorIs(t, err, ioErr)
		require.NoError(t, f.Close())
	})

	t.Run("injected_rename_error", func(t *testing.T) {
		fsys.FailRename("/data/a.txt", syscall.EXDEV)
		err := fsys.Rename("/data/a.txt", "/data/moved.txt")
		var linkErr *os.LinkError
		require.ErrorAs(t, err, &linkErr)
		assert.ErrorIs(t, err, syscall.EXDEV)

		_, err = fsys.Stat("/data/a.txt")
		assert.NoError(t, err, "a failed rename leaves the file in place")
		require.NoError(t, fsys.Rename("/data/b.txt", "/data/renamed.txt"))
		_, err = fsys.Stat("/data/renamed.txt")
		assert.NoError(t, err)
	})

	// WriteFile accounts for one open of each file
	assert.Equal(t, 2, fsys.Opens("/data/a.txt"))
	assert.Equal(t, 2, fsys.Opens("/data/b.txt"))
}
