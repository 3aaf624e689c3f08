// Package logging provides the category-tagged zap loggers used by the
// interpreter, planner and search subsystems. A nil *zap.Logger passed to
// any constructor in this module is always treated as "discard everything"
// rather than panicking, so unit tests and library callers never need to
// wire one up.
package logging

import "go.uber.org/zap"

// Category names the subsystem a logger line belongs to, mirrored into
// every entry as a field rather than a separate file (unlike a CLI, this
// core has no log directory to fan out into).
type Category string

const (
	CategoryInterpreter Category = "interpreter"
	CategoryPlanner     Category = "planner"
	CategorySearch      Category = "search"
	CategoryPhysics     Category = "physics"
)

// Named returns base.Named(string(cat)).Sugar(), or a no-op sugared logger
// if base is nil.
func Named(base *zap.Logger, cat Category) *zap.SugaredLogger {
	if base == nil {
		return zap.NewNop().Sugar()
	}
	return base.Named(string(cat)).Sugar()
}

// Development builds a human-readable zap logger at debug level, suitable
// for interactive use while iterating on the planner's heuristic.
func Development() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	return cfg.Build()
}

// Production builds a JSON zap logger at info level, suitable for
// embedding this core inside a larger service.
func Production() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	return cfg.Build()
}
