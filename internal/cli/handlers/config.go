package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/acme/internal/cli"
)

// ShowConfig displays the effective configuration
func ShowConfig(deps *cli.Deps) {
	svc := deps.Services.Config

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", svc.GetPath())
	if svc.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	if local := svc.GetLocalPath(); local != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Local config: %s\n", local)
		if svc.LocalExists() {
			_, _ = fmt.Fprintln(deps.Stdout, "Local status: File exists")
		} else {
			_, _ = fmt.Fprintln(deps.Stdout, "Local status: Not present")
		}
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	encoded, err := svc.Encoded()
	if err != nil {
		cli.PrintError(deps.Stderr, "Failed to encode configuration", err, "")
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprint(deps.Stdout, encoded)
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	err := deps.Services.Config.Init()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}
