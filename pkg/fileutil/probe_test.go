// pkg/fileutil/probe_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem, FaultFS
// PURPOSE: Readability probe returns true for readable files and false on any I/O failure

package fileutil_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/futils/pkg/filesystem"
	"github.com/arthur-debert/futils/pkg/fileutil"
	"github.com/arthur-debert/futils/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanRead_RealFiles(t *testing.T) {
	dir := t.TempDir()
	fsys := filesystem.NewOS()

	readable := filepath.Join(dir, "readable.txt")
	require.NoError(t, os.WriteFile(readable, []byte("data"), 0644))
	assert.True(t, fileutil.CanRead(fsys, readable))

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	assert.True(t, fileutil.CanRead(fsys, empty), "empty files are readable")

	assert.False(t, fileutil.CanRead(fsys, filepath.Join(dir, "missing.txt")))
}

func TestCanRead_PermissionRevoked(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	path := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))
	require.NoError(t, os.Chmod(path, 0))
	t.Cleanup(func() { _ = os.Chmod(path, 0644) })

	assert.False(t, fileutil.CanRead(filesystem.NewOS(), path))
}

func TestCanRead_InjectedFailures(t *testing.T) {
	tests := []struct {
		name   string
		inject func(f *testutil.FaultFS, path string)
		want   bool
	}{
		{
			name:   "readable",
			inject: func(f *testutil.FaultFS, path string) {},
			want:   true,
		},
		{
			name:   "open_denied",
			inject: func(f *testutil.FaultFS, path string) { f.FailOpen(path, fs.ErrPermission) },
			want:   false,
		},
		{
			name:   "read_fails",
			inject: func(f *testutil.FaultFS, path string) { f.FailRead(path, errors.New("input/output error")) },
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testutil.NewFaultFS(nil)
			testutil.WriteFile(t, fsys, "/data/file.bin", []byte{0x01, 0x02})
			tt.inject(fsys, "/data/file.bin")

			assert.Equal(t, tt.want, fileutil.CanRead(fsys, "/data/file.bin"))
			assert.Equal(t, 0, fsys.OpenHandles(), "handle must be released")
		})
	}
}
