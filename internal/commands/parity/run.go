package paritycmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-bilingual/internal/commands"
	"github.com/goliatone/go-bilingual/internal/logging"
	"github.com/goliatone/go-bilingual/internal/parity"
	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

const runParityMessageType = "bilingual.parity.run"

// RunParityCommand requests a parity validation pass over a content tree.
type RunParityCommand struct {
	Root string `json:"root"`
}

// Type implements command.Message.
func (RunParityCommand) Type() string { return runParityMessageType }

// Validate ensures the command names a content root before reaching handlers.
func (m RunParityCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Root) == "" {
		errs["root"] = validation.NewError("bilingual.parity.run.root_required", "root is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReportSink receives the report produced by a validation run.
type ReportSink func(ctx context.Context, report parity.Report) error

// RunParityHandler executes parity validation via the shared command handler
// foundation and forwards the report to an optional sink.
type RunParityHandler struct {
	inner *commands.Handler[RunParityCommand]
}

// NewRunParityHandler constructs a handler wired to the provided validator.
func NewRunParityHandler(validator *parity.Validator, sink ReportSink, logger interfaces.Logger, opts ...commands.HandlerOption[RunParityCommand]) *RunParityHandler {
	if validator == nil {
		validator = parity.NewValidator(parity.Options{})
	}
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg RunParityCommand) error {
		report, err := validator.Validate(ctx, msg.Root)
		if err != nil {
			return err
		}
		if sink == nil {
			return nil
		}
		return sink(ctx, report)
	}

	handlerOpts := []commands.HandlerOption[RunParityCommand]{
		commands.WithLogger[RunParityCommand](baseLogger),
		commands.WithOperation[RunParityCommand]("parity.run"),
		commands.WithMessageFields(func(msg RunParityCommand) map[string]any {
			if trimmed := strings.TrimSpace(msg.Root); trimmed != "" {
				return map[string]any{"root": trimmed}
			}
			return nil
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[RunParityCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RunParityHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RunParityCommand].Execute.
func (h *RunParityHandler) Execute(ctx context.Context, msg RunParityCommand) error {
	return h.inner.Execute(ctx, msg)
}
