package toml

import "go.uber.org/zap"

// NewTraceLogger builds the *zap.Logger a caller passes to
// Context.SetLogger to get Debug-level tracing of every deserialize-time
// error as it's recorded. It's a thin convenience over zap's own
// constructors; callers who already carry a *zap.Logger from elsewhere in
// their application should just call SetLogger with that one instead.
func NewTraceLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
