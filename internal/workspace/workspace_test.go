package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatumaykin/crabgen/internal/render"
)

func testArtifacts() []render.Artifact {
	return []render.Artifact{
		{FileName: "crab_cfg_A.py", Content: "cfg\n", Mode: 0644},
		{FileName: "crab_script.sh", Content: "#!/bin/sh\n", Mode: 0755},
		{FileName: "PSet.py", Content: "pset\n"},
	}
}

func TestDatasetDir(t *testing.T) {
	tests := []struct {
		root string
		base string
		want string
	}{
		{"out/", "DY_2018", filepath.Join("out", "DY_2018")},
		{"out", "DY_2018", filepath.Join("out", "DY_2018")},
		{"/abs/out", "A", filepath.Join("/abs/out", "A")},
	}

	for _, tt := range tests {
		t.Run(tt.root+"+"+tt.base, func(t *testing.T) {
			ws := New(tt.root, false)
			assert.Equal(t, tt.want, ws.DatasetDir(tt.base))
			assert.Equal(t, tt.root, ws.Root())
		})
	}
}

// TestEnsureDatasetDir tests directory creation semantics
func TestEnsureDatasetDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "out")
	ws := New(root, false)

	dir, err := ws.EnsureDatasetDir("DY_2018")
	require.NoError(t, err)
	assert.DirExists(t, dir)

	// Повторный вызов не является ошибкой
	again, err := ws.EnsureDatasetDir("DY_2018")
	require.NoError(t, err)
	assert.Equal(t, dir, again)
}

func TestEnsureDatasetDir_FileInTheWay(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "DY_2018"), []byte("x"), 0644))

	_, err := New(root, false).EnsureDatasetDir("DY_2018")
	assert.ErrorContains(t, err, "not a directory")
}

func TestEnsureDir_Empty(t *testing.T) {
	assert.ErrorContains(t, ensureDir(""), "output path is empty")
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	ws := New(dir, false)

	var written []string
	err := ws.WriteArtifacts(dir, testArtifacts(), func(path string) {
		written = append(written, path)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "crab_cfg_A.py"),
		filepath.Join(dir, "crab_script.sh"),
		filepath.Join(dir, "PSet.py"),
	}, written)

	data, err := os.ReadFile(filepath.Join(dir, "crab_cfg_A.py"))
	require.NoError(t, err)
	assert.Equal(t, "cfg\n", string(data))

	info, err := os.Stat(filepath.Join(dir, "crab_script.sh"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0100, "wrapper should be executable")
}

func TestWriteArtifacts_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "PSet.py")
	require.NoError(t, os.WriteFile(path, []byte("a much longer stale content\n"), 0644))

	require.NoError(t, New(dir, false).WriteArtifacts(dir, testArtifacts(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pset\n", string(data))
}

func TestWriteArtifacts_Failure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	var written []string
	err := New(dir, false).WriteArtifacts(dir, testArtifacts(), func(path string) {
		written = append(written, path)
	})
	assert.ErrorContains(t, err, "failed to write")
	assert.Empty(t, written)
}

func TestDryRun(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")
	ws := New(root, true)
	assert.True(t, ws.DryRun())

	dir, err := ws.EnsureDatasetDir("DY_2018")
	require.NoError(t, err)

	var written []string
	require.NoError(t, ws.WriteArtifacts(dir, testArtifacts(), func(path string) {
		written = append(written, path)
	}))

	assert.Len(t, written, 3)
	assert.NoDirExists(t, root)
}
