package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// run()
// -----------------------------------------------------------------------------

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{name: "no flags", args: nil, wantStderr: "usage: unitgen"},
		{name: "missing out", args: []string{"-spec", "units.yaml"}, wantStderr: "usage: unitgen"},
		{name: "blank spec", args: []string{"-spec", "  ", "-out", "x.gen.go"}, wantStderr: "usage: unitgen"},
		{name: "unknown flag", args: []string{"-bogus"}, wantStderr: "flag provided but not defined"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			assert.Equal(t, 2, run(tc.args, &stderr))
			assert.Contains(t, stderr.String(), tc.wantStderr)
		})
	}
}

func TestRun_MissingSpecFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var stderr bytes.Buffer

	code := run([]string{"-spec", filepath.Join(dir, "nope.yaml"), "-out", filepath.Join(dir, "x.gen.go")}, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "unitgen: read spec")
}

func TestRun_InvalidSpec(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	specPath := writeTempFile(t, dir, "units.yaml", "package: units\ndimensions: []\n")
	outPath := filepath.Join(dir, "units.gen.go")
	var stderr bytes.Buffer

	code := run([]string{"-spec", specPath, "-out", outPath}, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "dimensions must have at least 1 entry")
	_, err := os.Stat(outPath)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRun_GeneratesKinematics(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	specPath := writeTempFile(t, dir, "units.yaml", minimalSpecYAML())
	outPath := filepath.Join(dir, "units.gen.go")
	var stderr bytes.Buffer

	code := run([]string{"-spec", specPath, "-out", outPath}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	got := readFileString(t, outPath)

	for _, want := range []string{
		"// Code generated by unitgen; DO NOT EDIT.",
		"package kinematics",
		`import "golang.org/x/exp/constraints"`,
		"type SpeedUnit struct{}",
		"return Dimension{Metre: 1, Kilogram: 0, Second: -1}",
		`func (SpeedUnit) Symbol() string { return "m/s" }`,
		"type Speed = Value[SpeedUnit]",
		"func MPerS[F constraints.Float](magnitude F) Speed {",
		"func LengthPerTime(a Length, b Time) Speed {",
		"return Speed{magnitude: a.magnitude / b.magnitude}",
		"func SpeedTimesTime(a Speed, b Time) Length {",
		`{Name: "SpeedTimesTime", Op: OpTimes, Left: SpeedUnit{}.Dimension(), Right: TimeUnit{}.Dimension(), Result: LengthUnit{}.Dimension(), Eval: func(a, b float64) Quantity { return SpeedTimesTime(MPerS(a), S(b)) }},`,
	} {
		assert.Contains(t, got, want)
	}
	assert.Equal(t, 4, strings.Count(got, "(a "), "expected four law functions")

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRun_AcceptsGlogFlags(t *testing.T) {
	// NOT parallel: sets glog's global flags.
	for _, name := range []string{"v", "logtostderr"} {
		f := flag.CommandLine.Lookup(name)
		require.NotNil(t, f)
		orig := f.Value.String()
		t.Cleanup(func() { _ = f.Value.Set(orig) })
	}

	dir := t.TempDir()
	specPath := writeTempFile(t, dir, "units.yaml", minimalSpecYAML())
	outPath := filepath.Join(dir, "units.gen.go")
	var stderr bytes.Buffer

	code := run([]string{"-logtostderr", "-v=1", "-spec", specPath, "-out", outPath}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.NotContains(t, stderr.String(), "flag provided but not defined")
	assert.Contains(t, readFileString(t, outPath), "package kinematics")

	v := flag.CommandLine.Lookup("v")
	require.NotNil(t, v)
	assert.Equal(t, "1", v.Value.String())
}

// TestRun_UnitsPackageIsUpToDate regenerates units/units.gen.go in memory and compares
// it with the checked-in file.
func TestRun_UnitsPackageIsUpToDate(t *testing.T) {
	t.Parallel()

	specBytes, err := os.ReadFile(filepath.Join("..", "..", "units", "units.yaml"))
	require.NoError(t, err)

	spec, err := parseSpec(specBytes)
	require.NoError(t, err)
	require.NoError(t, validateSpec(&spec))

	got, err := render(spec)
	require.NoError(t, err)

	want := readFileString(t, filepath.Join("..", "..", "units", "units.gen.go"))
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("units.gen.go is stale, run go generate ./units (-checked-in +generated):\n%s", diff)
	}
}

//
// -----------------------------------------------------------------------------
// writeFileAtomic() seam helpers
// -----------------------------------------------------------------------------

// fakeTempFile is a controllable file-like object for writeFileAtomic tests.
type fakeTempFile struct {
	fileName string
	writeErr error
	closeErr error
	closed   bool
}

func (f *fakeTempFile) Name() string { return f.fileName }

func (f *fakeTempFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *fakeTempFile) Close() error {
	f.closed = true
	return f.closeErr
}

// swapWriteFileSeams overrides the global seams and restores them on cleanup.
// Pass nil for any seam you don't want to override.
func swapWriteFileSeams(
	t *testing.T,
	createFn func(string, string) (tempFile, error),
	removeFn func(string) error,
	chmodFn func(string, os.FileMode) error,
	renameFn func(string, string) error,
) {
	t.Helper()

	origCreate, origRemove, origChmod, origRename := createTempFile, removeFile, chmodFile, renameFile
	t.Cleanup(func() {
		createTempFile, removeFile, chmodFile, renameFile = origCreate, origRemove, origChmod, origRename
	})

	if createFn != nil {
		createTempFile = createFn
	}
	if removeFn != nil {
		removeFile = removeFn
	}
	if chmodFn != nil {
		chmodFile = chmodFn
	}
	if renameFn != nil {
		renameFile = renameFn
	}
}

//
// -----------------------------------------------------------------------------
// writeFileAtomic()
// -----------------------------------------------------------------------------

func TestCommitTemp_ClosesAfterWriteError(t *testing.T) {
	t.Parallel()

	tmp := &fakeTempFile{fileName: "tmpfile", writeErr: errors.New("write failed")}

	err := commitTemp(tmp, "out.gen.go", []byte("x"), 0o644)
	require.EqualError(t, err, "write failed")
	assert.True(t, tmp.closed)
}

func TestWriteFileAtomic_TempFileIsHiddenSibling(t *testing.T) {
	// NOT parallel: mutates global seams.
	var gotDir, gotPattern string
	swapWriteFileSeams(t,
		func(dir, pattern string) (tempFile, error) {
			gotDir, gotPattern = dir, pattern
			return nil, errors.New("stop")
		},
		nil, nil, nil,
	)

	target := filepath.Join(t.TempDir(), "units.gen.go")
	require.EqualError(t, writeFileAtomic(target, nil, 0o644), "stop")
	assert.Equal(t, filepath.Dir(target), gotDir)
	assert.Equal(t, ".units.gen.go-*", gotPattern)
}

func TestWriteFileAtomic_Success(t *testing.T) {
	// NOT parallel: reads the global seams while other tests may swap them.
	dir := t.TempDir()
	target := filepath.Join(dir, "out.gen.go")

	require.NoError(t, writeFileAtomic(target, []byte("package x\n"), 0o644))
	assert.Equal(t, "package x\n", readFileString(t, target))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

// Covers every writeFileAtomic error branch, including deferred cleanup.
func TestWriteFileAtomic_AllErrorBranches(t *testing.T) {
	// NOT parallel: mutates global seams.
	okFile := func(dir, _ string) (tempFile, error) {
		return &fakeTempFile{fileName: filepath.Join(dir, "tmpfile")}, nil
	}

	testCases := []struct {
		name                string
		create              func(string, string) (tempFile, error)
		chmod               func(string, os.FileMode) error
		rename              func(string, string) error
		wantErr             string
		expectedRemoveCount int
	}{
		{
			name: "create temp error",
			create: func(string, string) (tempFile, error) {
				return nil, errors.New("create temp failed")
			},
			wantErr:             "create temp failed",
			expectedRemoveCount: 0,
		},
		{
			name: "write error removes temp",
			create: func(dir, _ string) (tempFile, error) {
				return &fakeTempFile{fileName: filepath.Join(dir, "tmpfile"), writeErr: errors.New("write failed")}, nil
			},
			wantErr:             "write failed",
			expectedRemoveCount: 1,
		},
		{
			name: "close error removes temp",
			create: func(dir, _ string) (tempFile, error) {
				return &fakeTempFile{fileName: filepath.Join(dir, "tmpfile"), closeErr: errors.New("close failed")}, nil
			},
			wantErr:             "close failed",
			expectedRemoveCount: 1,
		},
		{
			name: "write and close errors report the write error",
			create: func(dir, _ string) (tempFile, error) {
				return &fakeTempFile{
					fileName: filepath.Join(dir, "tmpfile"),
					writeErr: errors.New("write failed"),
					closeErr: errors.New("close failed"),
				}, nil
			},
			wantErr:             "write failed",
			expectedRemoveCount: 1,
		},
		{
			name:                "chmod error removes temp",
			create:              okFile,
			chmod:               func(string, os.FileMode) error { return errors.New("chmod failed") },
			wantErr:             "chmod failed",
			expectedRemoveCount: 1,
		},
		{
			name:                "rename error removes temp",
			create:              okFile,
			chmod:               func(string, os.FileMode) error { return nil },
			rename:              func(string, string) error { return errors.New("rename failed") },
			wantErr:             "rename failed",
			expectedRemoveCount: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			removeCount := 0
			swapWriteFileSeams(t, tc.create, func(string) error { removeCount++; return nil }, tc.chmod, tc.rename)

			err := writeFileAtomic(filepath.Join(t.TempDir(), "out.gen.go"), []byte("x"), 0o644)
			require.EqualError(t, err, tc.wantErr)
			assert.Equal(t, tc.expectedRemoveCount, removeCount)
		})
	}
}
