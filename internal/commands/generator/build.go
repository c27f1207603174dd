package generatorcmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-bilingual/internal/commands"
	"github.com/goliatone/go-bilingual/internal/generator"
	"github.com/goliatone/go-bilingual/internal/logging"
	"github.com/goliatone/go-bilingual/pkg/interfaces"
)

const buildArtifactsMessageType = "bilingual.generator.build"

// BuildArtifactsCommand requests artifact generation for a content tree.
type BuildArtifactsCommand struct {
	Root      string `json:"root"`
	OutputDir string `json:"output_dir"`
}

// Type implements command.Message.
func (BuildArtifactsCommand) Type() string { return buildArtifactsMessageType }

// Validate ensures both directories are named before reaching handlers.
func (m BuildArtifactsCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Root) == "" {
		errs["root"] = validation.NewError("bilingual.generator.build.root_required", "root is required")
	}
	if strings.TrimSpace(m.OutputDir) == "" {
		errs["output_dir"] = validation.NewError("bilingual.generator.build.output_dir_required", "output_dir is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ResultSink receives the build result produced by a generation run.
type ResultSink func(ctx context.Context, result generator.BuildResult) error

// BuildArtifactsHandler runs the generation service via the shared command
// handler foundation.
type BuildArtifactsHandler struct {
	inner *commands.Handler[BuildArtifactsCommand]
}

// NewBuildArtifactsHandler constructs a handler wired to the provided service.
func NewBuildArtifactsHandler(service *generator.Service, sink ResultSink, logger interfaces.Logger, opts ...commands.HandlerOption[BuildArtifactsCommand]) *BuildArtifactsHandler {
	if service == nil {
		service = generator.NewService(generator.Options{})
	}
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BuildArtifactsCommand) error {
		result, err := service.Build(ctx, msg.Root, msg.OutputDir)
		if err != nil {
			return err
		}
		if sink == nil {
			return nil
		}
		return sink(ctx, result)
	}

	handlerOpts := []commands.HandlerOption[BuildArtifactsCommand]{
		commands.WithLogger[BuildArtifactsCommand](baseLogger),
		commands.WithOperation[BuildArtifactsCommand]("generator.build"),
		commands.WithMessageFields(func(msg BuildArtifactsCommand) map[string]any {
			fields := map[string]any{}
			if trimmed := strings.TrimSpace(msg.Root); trimmed != "" {
				fields["root"] = trimmed
			}
			if trimmed := strings.TrimSpace(msg.OutputDir); trimmed != "" {
				fields["output_dir"] = trimmed
			}
			if len(fields) == 0 {
				return nil
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BuildArtifactsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildArtifactsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BuildArtifactsCommand].Execute.
func (h *BuildArtifactsHandler) Execute(ctx context.Context, msg BuildArtifactsCommand) error {
	return h.inner.Execute(ctx, msg)
}
