// Package log holds the zap plumbing shared by the table and the shell:
// level parsing, console logger construction and map-based emission.
package log
