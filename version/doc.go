// Package version reports build information for the version command and
// the log and trace metadata.
package version
