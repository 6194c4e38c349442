package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// minimalSpecYAML returns a small spec that passes validateSpec: length, time and speed,
// which yields exactly the laws Length/Time=Speed, Length/Speed=Time, Time*Speed=Length
// and Speed*Time=Length.
func minimalSpecYAML() string {
	return `package: kinematics
dimensions:
  - name: Length
    unit: LengthUnit
    constructor: M
    symbol: m
    metre: 1
  - name: Time
    unit: TimeUnit
    constructor: S
    symbol: s
    second: 1
  - name: Speed
    unit: SpeedUnit
    constructor: MPerS
    symbol: m/s
    metre: 1
    second: -1
`
}

// writeTempFile writes a file under dir/name and returns its full path.
func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// readFileString reads a file and returns its contents as string (fatal on error).
func readFileString(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}
