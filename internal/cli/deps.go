package cli

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/xolan/acme/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Clipboard receives reports copied with gencsv --copy
	Clipboard func(text string) error

	// Services is nil until the metrics directory has been located
	Services *service.Services
}

// DefaultDeps creates a new Deps with default values.
// Services are created once the command line is parsed, since --dir decides
// which metrics directory they use.
func DefaultDeps() *Deps {
	return NewDeps(nil)
}

// NewDeps creates a new Deps with the given services
func NewDeps(services *service.Services) *Deps {
	return &Deps{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Stdin:     os.Stdin,
		Exit:      os.Exit,
		Clipboard: clipboard.WriteAll,
		Services:  services,
	}
}

// Global deps instance for CLI
var deps = DefaultDeps()

// SetDeps sets the global deps (for testing)
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets to default deps
func ResetDeps() {
	deps = DefaultDeps()
}

// GetDeps returns the current deps
func GetDeps() *Deps {
	return deps
}
