// Package harness provides utilities for integration testing the chinook CLI.
// It compiles the binary once and runs each command against an isolated
// CHINOOK_HOME.
package harness
