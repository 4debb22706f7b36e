// Package app holds identifiers shared across the binary.
package app

// Name is the binary name and the config directory name under os.UserConfigDir().
const Name = "acme"
