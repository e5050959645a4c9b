// Package paths provides centralized path handling for picomenu.
// It implements XDG Base Directory specification compliance for the
// configuration and log files of the host binary.
package paths
