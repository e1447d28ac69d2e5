// Package cli is responsible for parsing command-line flags, validating
// them, and mapping failures to process exit codes. It translates flags and
// their environment variable aliases into the application's configuration.
package cli
