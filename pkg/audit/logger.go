package audit

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/raseguard/raseguard/pkg/correlation"
	"github.com/raseguard/raseguard/pkg/logging"
)

// Action names the kind of event a Logger records.
type Action string

const (
	ActionProtect     Action = "PROTECT"
	ActionRecover     Action = "RECOVER"
	ActionSplit       Action = "SPLIT"
	ActionReconstruct Action = "RECONSTRUCT"
	ActionAttack      Action = "ATTACK"
)

// Logger writes one structured entry per audited event: who did what to
// which record, whether it succeeded, and under which correlation ID. It is
// the one package that commits to a logging shape beyond the CLI's ad-hoc
// --verbose stream, so it builds on pkg/logging's JSON handler rather than
// configuring slog on its own.
type Logger struct {
	logger *logging.Logger
}

// New returns a Logger that writes JSON entries to w.
func New(w io.Writer) *Logger {
	return &Logger{logger: logging.NewJSONLogger(w, false)}
}

// NewDefault returns a Logger that writes to stderr, matching where the
// rest of the CLI sends operational output.
func NewDefault() *Logger {
	return New(os.Stderr)
}

// Record appends one audit entry. ctx carries the correlation ID shared
// with logging for the same operation; one is generated if ctx has none.
func (l *Logger) Record(ctx context.Context, action Action, actor, subjectID, detail string, success bool) {
	id := correlation.GetOrGenerate(ctx)
	l.logger.Info("audit",
		"correlationId", id,
		"action", string(action),
		"actor", actor,
		"subjectId", subjectID,
		"detail", detail,
		"success", success,
		"timestamp", time.Now().UTC().Format(time.RFC3339),
	)
}
