package iopaths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datakit/pkg/iopaths"
	"github.com/dmitrymomot/datakit/pkg/logger"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestNew(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := touch(t, filepath.Join(dir, "in.csv"))

	p, err := iopaths.New(
		iopaths.WithPaths(iopaths.InFiles, map[string]string{"data": in, "stdin": "-"}),
		iopaths.WithPaths(iopaths.OutDirs, map[string]string{"out": filepath.Join(dir, "out")}),
		iopaths.WithPaths(iopaths.OutFiles, map[string]string{"result": filepath.Join(dir, "out", "r.csv")}),
	)
	require.NoError(t, err)

	assert.Equal(t, in, p.MustGet("data"))
	assert.Equal(t, "-", p.MustGet("stdin"))
	assert.Equal(t, 4, p.NumPaths())
	assert.Equal(t, 2, p.CollectionSizes()[iopaths.InFiles])

	c, err := p.CollectionOf("result")
	require.NoError(t, err)
	assert.Equal(t, iopaths.OutFiles, c)

	coll, err := p.Collection(iopaths.TmpDirs)
	require.NoError(t, err)
	assert.Nil(t, coll)

	_, err = p.Get("missing")
	assert.ErrorIs(t, err, iopaths.ErrUnknownName)
	assert.Panics(t, func() { p.MustGet("missing") })
}

func TestRelativePathsAreAbsolute(t *testing.T) {
	t.Parallel()

	p, err := iopaths.New(iopaths.WithPaths(iopaths.OutDirs, map[string]string{"out": "results"}))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(p.MustGet("out")))
}

func TestValidation(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := touch(t, filepath.Join(dir, "in.csv"))
	existingDir := filepath.Join(dir, "exists")
	require.NoError(t, os.Mkdir(existingDir, 0o755))

	tests := []struct {
		name string
		opts []iopaths.Option
		want error
	}{
		{
			name: "missing input file",
			opts: []iopaths.Option{iopaths.WithPaths(iopaths.InFiles, map[string]string{"a": filepath.Join(dir, "nope")})},
			want: iopaths.ErrPathNotFound,
		},
		{
			name: "input dir is a file",
			opts: []iopaths.Option{iopaths.WithPaths(iopaths.InDirs, map[string]string{"a": in})},
			want: iopaths.ErrNotDirectory,
		},
		{
			name: "same key in two collections",
			opts: []iopaths.Option{
				iopaths.WithPaths(iopaths.InFiles, map[string]string{"a": in}),
				iopaths.WithPaths(iopaths.OutFiles, map[string]string{"a": filepath.Join(dir, "o")}),
			},
			want: iopaths.ErrDuplicateKey,
		},
		{
			name: "duplicate paths in a collection",
			opts: []iopaths.Option{iopaths.WithPaths(iopaths.OutFiles, map[string]string{
				"a": filepath.Join(dir, "o.csv"), "b": filepath.Join(dir, "o.csv"),
			})},
			want: iopaths.ErrDuplicatePath,
		},
		{
			name: "input also an output",
			opts: []iopaths.Option{
				iopaths.WithPaths(iopaths.InFiles, map[string]string{"a": in}),
				iopaths.WithPaths(iopaths.OutFiles, map[string]string{"b": in}),
			},
			want: iopaths.ErrDuplicatePath,
		},
		{
			name: "existing output without overwriting",
			opts: []iopaths.Option{
				iopaths.WithAllowOverwriting(false),
				iopaths.WithPaths(iopaths.OutFiles, map[string]string{"b": in}),
			},
			want: iopaths.ErrPathExists,
		},
		{
			name: "existing tmp dir",
			opts: []iopaths.Option{iopaths.WithPaths(iopaths.TmpDirs, map[string]string{"t": existingDir})},
			want: iopaths.ErrPathExists,
		},
		{
			name: "output inside tmp dir",
			opts: []iopaths.Option{
				iopaths.WithPaths(iopaths.TmpDirs, map[string]string{"t": filepath.Join(dir, "tmp")}),
				iopaths.WithPaths(iopaths.OutFiles, map[string]string{"o": filepath.Join(dir, "tmp", "o.csv")}),
			},
			want: iopaths.ErrNestedPath,
		},
		{
			name: "empty path",
			opts: []iopaths.Option{iopaths.WithPaths(iopaths.OutFiles, map[string]string{"o": ""})},
			want: iopaths.ErrEmptyPath,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := iopaths.New(tt.opts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("duplicates allowed in out dirs", func(t *testing.T) {
		t.Parallel()
		p, err := iopaths.New(iopaths.WithPaths(iopaths.OutDirs, map[string]string{"a": dir, "b": dir}))
		require.NoError(t, err)
		assert.Equal(t, 2, p.NumPaths())
	})

	t.Run("allow none drops empty paths", func(t *testing.T) {
		t.Parallel()
		p, err := iopaths.New(iopaths.AllowNone(), iopaths.WithPaths(iopaths.OutFiles, map[string]string{"o": ""}))
		require.NoError(t, err)
		assert.Equal(t, 0, p.NumPaths())
	})
}

func TestSetAndRemove(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := touch(t, filepath.Join(dir, "in.csv"))

	p, err := iopaths.New(iopaths.WithPaths(iopaths.InFiles, map[string]string{"data": in}))
	require.NoError(t, err)

	require.NoError(t, p.Set("out", filepath.Join(dir, "out.csv"), iopaths.OutFiles))
	require.NoError(t, p.SetMany(map[string]string{
		"a": filepath.Join(dir, "sub", "a.csv"),
		"b": filepath.Join(dir, "sub", "b.csv"),
	}, iopaths.OutFiles))
	assert.Equal(t, 4, p.NumPaths())

	// a failing change keeps the previous state
	err = p.Set("bad", filepath.Join(dir, "nope"), iopaths.InFiles)
	assert.ErrorIs(t, err, iopaths.ErrPathNotFound)
	assert.Equal(t, 4, p.NumPaths())

	err = p.Set("x", "x", iopaths.Collection("weird"))
	assert.ErrorIs(t, err, iopaths.ErrUnknownCollection)

	require.NoError(t, p.RemoveInDir(filepath.Join(dir, "sub"), false))
	assert.Equal(t, 2, p.NumPaths())

	require.NoError(t, p.RemoveMany("out"))
	assert.ErrorIs(t, p.Remove("out"), iopaths.ErrUnknownName)

	require.NoError(t, p.SetCollection(iopaths.InFiles, nil))
	coll, err := p.Collection(iopaths.InFiles)
	require.NoError(t, err)
	assert.Nil(t, coll)
}

func TestFileSystemOperations(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	var lines []string
	m := logger.NewMessenger(logger.WithSink(func(s string) { lines = append(lines, s) }))

	p, err := iopaths.New(
		iopaths.WithReporter(m),
		iopaths.WithPaths(iopaths.OutDirs, map[string]string{"out": filepath.Join(dir, "out")}),
		iopaths.WithPaths(iopaths.OutFiles, map[string]string{"result": filepath.Join(dir, "res", "r.csv")}),
		iopaths.WithPaths(iopaths.TmpDirs, map[string]string{"scratch": filepath.Join(dir, "scratch")}),
	)
	require.NoError(t, err)

	require.NoError(t, p.MkOutputDirs())
	assert.DirExists(t, filepath.Join(dir, "out"))
	assert.DirExists(t, filepath.Join(dir, "res"))
	assert.DirExists(t, filepath.Join(dir, "scratch"))
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "`out` directory does not exist and will be created")

	assert.ErrorIs(t, p.MkOutputDirs(iopaths.InFiles), iopaths.ErrNotOutputCollection)
	assert.ErrorIs(t, p.MkOutputDirs(iopaths.TmpFiles), iopaths.ErrCollectionNotSet)

	result := touch(t, p.MustGet("result"))
	moved := filepath.Join(dir, "res", "moved.csv")
	require.NoError(t, p.MvFile("result", moved))
	assert.Equal(t, moved, p.MustGet("result"))
	assert.NoFileExists(t, result)
	assert.FileExists(t, moved)

	require.NoError(t, p.RmFile("result"))
	assert.NoFileExists(t, moved)
	_, err = p.Get("result")
	assert.ErrorIs(t, err, iopaths.ErrUnknownName)

	require.NoError(t, p.RmTmpDirs())
	assert.NoDirExists(t, filepath.Join(dir, "scratch"))
	_, err = p.Get("scratch")
	assert.ErrorIs(t, err, iopaths.ErrUnknownName)
}

func TestRmFileMissing(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	p, err := iopaths.New(iopaths.WithPaths(iopaths.OutFiles, map[string]string{"o": filepath.Join(dir, "o.csv")}))
	require.NoError(t, err)

	assert.ErrorIs(t, p.RmFile("o"), iopaths.ErrNotFile)
	require.NoError(t, p.RmFile("o", iopaths.IgnoreMissing(), iopaths.KeepPath()))
	assert.Equal(t, 1, p.NumPaths())
}

func TestNewTmpDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	p, err := iopaths.New()
	require.NoError(t, err)
	path, err := p.NewTmpDir("tmp", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "tmp_"))
	assert.Equal(t, dir, filepath.Dir(path))
	assert.NoDirExists(t, path)

	other, err := p.NewTmpDir("tmp2", dir)
	require.NoError(t, err)
	assert.NotEqual(t, path, other)
}

func TestUpdateDifferenceEqual(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	a, err := iopaths.New(iopaths.WithPaths(iopaths.OutFiles, map[string]string{
		"x": filepath.Join(dir, "x"), "y": filepath.Join(dir, "y"),
	}))
	require.NoError(t, err)
	b, err := iopaths.New(iopaths.WithPaths(iopaths.OutFiles, map[string]string{"x": filepath.Join(dir, "x")}))
	require.NoError(t, err)

	diff, err := a.Difference(b)
	require.NoError(t, err)
	assert.Equal(t, 1, diff.NumPaths())
	assert.Equal(t, filepath.Join(dir, "y"), diff.MustGet("y"))

	assert.False(t, a.Equal(b))
	require.NoError(t, b.Update(diff))
	assert.True(t, a.Equal(b))

	empty, err := iopaths.New(iopaths.WithPaths(iopaths.OutDirs, map[string]string{}))
	require.NoError(t, err)
	unset, err := iopaths.New()
	require.NoError(t, err)
	assert.False(t, empty.Equal(unset))
}

func TestString(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	p, err := iopaths.New(
		iopaths.WithNote("dry run"),
		iopaths.WithPaths(iopaths.OutFiles, map[string]string{"o": filepath.Join(dir, "o.csv")}),
	)
	require.NoError(t, err)
	s := p.String()
	assert.True(t, strings.HasPrefix(s, "Input and output paths\n  in_files (0)\n"))
	assert.Contains(t, s, "  out_files (1):\n    o -> "+filepath.Join(dir, "o.csv"))
	assert.True(t, strings.HasSuffix(s, "  Note: dry run"))
}

func TestYAML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := touch(t, filepath.Join(dir, "in.csv"))

	p, err := iopaths.New(
		iopaths.WithPaths(iopaths.InFiles, map[string]string{"data": in}),
		iopaths.WithPaths(iopaths.OutDirs, map[string]string{"out": filepath.Join(dir, "out")}),
	)
	require.NoError(t, err)

	file := filepath.Join(dir, "paths.yaml")
	require.NoError(t, p.SaveYAML(file))

	loaded, err := iopaths.LoadYAML(file)
	require.NoError(t, err)
	assert.True(t, p.Equal(loaded))

	require.NoError(t, os.WriteFile(file, []byte("bogus:\n  a: b\n"), 0o644))
	_, err = iopaths.LoadYAML(file)
	assert.ErrorIs(t, err, iopaths.ErrUnknownCollection)
}

func TestMkDirRmDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b")

	require.NoError(t, iopaths.MkDir(target))
	assert.DirExists(t, target)
	require.NoError(t, iopaths.MkDir(target))
	assert.ErrorIs(t, iopaths.MkDir(target, iopaths.FailIfExists()), iopaths.ErrPathExists)

	file := touch(t, filepath.Join(dir, "f.txt"))
	assert.ErrorIs(t, iopaths.RmDir(file), iopaths.ErrNotDirectory)
	require.NoError(t, iopaths.RmDir(file, iopaths.AllowNonDir()))

	require.NoError(t, iopaths.RmDir(filepath.Join(dir, "a")))
	assert.NoDirExists(t, filepath.Join(dir, "a"))
	require.NoError(t, iopaths.RmDir(filepath.Join(dir, "a")))
	assert.ErrorIs(t, iopaths.RmDir(filepath.Join(dir, "a"), iopaths.FailIfMissing()), iopaths.ErrPathNotFound)
}
