// Package mylog is the leveled logging facade: plain stderr lines locally,
// structured gcloud entries when deployed.
package mylog

import "context"

type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// New is bound at init time to the implementation matching the environment.
var New func(name string) Logger

// Logger writes one log line. The traceLabel groups related lines; the
// services pass the checkout session uid.
type Logger interface {
	Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any)
}
