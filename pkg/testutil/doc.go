// Package testutil provides test environments for csvexport components.
//
// A TestEnvironment owns a filesystem (in memory or a temporary directory on
// disk) and points every location csvexport reads from the environment,
// such as the config, state and scratch folders, inside it, so tests never
// touch the user's real folders.
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when code under test goes
//     through paths that only exist on disk, such as the CLI
//   - Define fixtures inline with WriteFile
package testutil
