package shader

import (
	"io/fs"
	"log/slog"
)

// Option configures a Program.
type Option func(*Program)

// WithFS reads stage sources from fsys instead of the OS filesystem. Paths
// passed to Init must then be valid fs.FS paths.
func WithFS(fsys fs.FS) Option {
	return func(p *Program) { p.fsys = fsys }
}

// WithLogger sets the logger that receives compile and link diagnostics.
// By default nothing is logged; failures are always returned from Init.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Program) {
		if logger != nil {
			p.logger = logger
		}
	}
}
