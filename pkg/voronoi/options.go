package voronoi

import (
	"github.com/0x0FACED/go-delaunay/pkg/logger"
)

type options struct {
	log   *logger.ZapLogger
	relax int
}

// Option configures New.
type Option func(*options)

// WithLogger routes build logs to l. Per-event lines are logged at debug
// level. Without it nothing is logged.
func WithLogger(l *logger.ZapLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithRelaxation runs the given number of Lloyd iterations after the first
// build.
func WithRelaxation(iterations int) Option {
	return func(o *options) { o.relax = iterations }
}

func buildOptions(opts []Option) options {
	o := options{log: logger.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
