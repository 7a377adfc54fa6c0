// Package logger builds the zap logger used across the service.
//
// Level "debug" selects zap's development config; any other level is parsed
// and applied to the production config. Format is "json" or "console".
//
// WithRayID tags a logger with the ray id that the rayid middleware stored on
// the request, so every line logged while handling one event can be grouped:
//
//	l := logger.WithRayID(log, c)
//	l.Error("Event handling failed", zap.Error(err))
package logger
