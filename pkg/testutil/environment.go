package testutil

import (
	"path/filepath"
	"testing"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/filesystem"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/paths"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// memoryRoot is the base folder of in-memory environments.
const memoryRoot = "/work"

// TestEnvironment provides an isolated set of folders for a test
type TestEnvironment struct {
	// Root holds fixtures written with WriteFile
	Root       string
	ConfigDir  string
	StateDir   string
	ScratchDir string

	FS   filesystem.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment and points the
// csvexport environment variables into it.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvMemoryOnly:
		env.FS = filesystem.NewMemory()
		env.Root = memoryRoot
	case EnvIsolated:
		env.FS = filesystem.NewOS()
		env.Root = t.TempDir()
	default:
		t.Fatalf("unknown environment type %d", envType)
	}

	env.ConfigDir = filepath.Join(env.Root, ".config", paths.AppName)
	env.StateDir = filepath.Join(env.Root, ".state")
	env.ScratchDir = filepath.Join(env.Root, ".scratch")
	for _, dir := range []string{env.Root, env.ConfigDir, env.StateDir, env.ScratchDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvScratchDir, env.ScratchDir)
	if envType == EnvIsolated {
		// The log file is always opened on the real disk.
		t.Setenv("XDG_STATE_HOME", env.StateDir)
	} else {
		t.Setenv("XDG_STATE_HOME", t.TempDir())
	}

	return env
}

// Path joins elements onto the environment root.
func (e *TestEnvironment) Path(elem ...string) string {
	return filepath.Join(append([]string{e.Root}, elem...)...)
}

// WriteFile writes content at rel under the root, creating parent folders,
// and returns the full path.
func (e *TestEnvironment) WriteFile(rel, content string) string {
	e.t.Helper()

	path := e.Path(rel)
	if err := e.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := e.FS.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content at path, failing the test when it is
// missing. Relative paths are resolved against the root.
func (e *TestEnvironment) ReadFile(path string) string {
	e.t.Helper()

	if !filepath.IsAbs(path) {
		path = e.Path(path)
	}
	data, err := e.FS.ReadFile(path)
	if err != nil {
		e.t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists. Relative paths are resolved against
// the root.
func (e *TestEnvironment) Exists(path string) bool {
	e.t.Helper()

	if !filepath.IsAbs(path) {
		path = e.Path(path)
	}
	exists, err := e.FS.Exists(path)
	if err != nil {
		e.t.Fatalf("failed to stat %s: %v", path, err)
	}
	return exists
}
