package app

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/fibseq/internal/cli"
	"github.com/agbru/fibseq/internal/config"
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/logging"
	"github.com/agbru/fibseq/internal/metrics"
	"github.com/agbru/fibseq/internal/sequence"
)

const instrumentationName = "github.com/agbru/fibseq/internal/app"

// Application represents the fibseq application instance.
type Application struct {
	Config    config.AppConfig
	Presenter cli.SequencePresenter
	Logger    logging.Logger
	Metrics   *metrics.Metrics
	ErrWriter io.Writer

	configSet bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithConfig replaces the environment-derived configuration.
func WithConfig(cfg config.AppConfig) AppOption {
	return func(a *Application) {
		a.Config = cfg
		a.configSet = true
	}
}

// WithPresenter sets a custom SequencePresenter for the application.
func WithPresenter(p cli.SequencePresenter) AppOption {
	return func(a *Application) { a.Presenter = p }
}

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithMetrics sets the metrics sink for the application.
func WithMetrics(m *metrics.Metrics) AppOption {
	return func(a *Application) { a.Metrics = m }
}

// New creates a new Application. Command-line arguments other than the
// program name are ignored; diagnostics are configured from the environment.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if !app.configSet {
		app.Config = config.Load()
	}
	if err := app.Config.Validate(); err != nil {
		return nil, apperrors.WrapError(err, "invalid configuration")
	}

	programName := "fibseq"
	if len(args) > 0 && args[0] != "" {
		programName = filepath.Base(args[0])
	}

	if app.Logger == nil {
		level, _ := logging.ParseLevel(app.Config.LogLevel)
		app.Logger = logging.NewConsoleLogger(errWriter, programName, level)
	}
	if app.Presenter == nil {
		app.Presenter = cli.CLISequencePresenter{}
	}
	if app.Metrics == nil {
		app.Metrics = metrics.New()
	}

	if len(args) > 1 {
		app.Logger.Debug("ignoring command-line arguments", logging.Int("count", len(args)-1))
	}
	return app, nil
}

// Run generates the sequence, writes its tail to out and returns the exit
// code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "fibseq.Run")
	defer span.End()

	a.Logger.Debug("starting run",
		logging.String("version", Version),
		logging.Int("limit", a.Config.Limit),
		logging.Int("count", a.Config.Count))

	seq := a.generate(ctx)
	exitCode := a.present(ctx, seq, out)
	a.finish(exitCode)

	span.SetAttributes(attribute.Int("fibseq.exit_code", exitCode))
	return exitCode
}

// generate builds the sequence and records its shape.
func (a *Application) generate(ctx context.Context) sequence.Sequence {
	_, span := otel.Tracer(instrumentationName).Start(ctx, "sequence.Generate")
	defer span.End()

	start := time.Now()
	seq := sequence.Generate(a.Config.Limit)
	elapsed := time.Since(start)

	largest, _ := seq.Last()
	span.SetAttributes(
		attribute.Int("fibseq.limit", a.Config.Limit),
		attribute.Int("fibseq.terms", seq.Len()),
		attribute.Int("fibseq.largest_term", largest),
	)
	a.Metrics.ObserveSequence(seq, a.Config.Limit, elapsed)
	a.Logger.Debug("sequence generated",
		logging.Int("terms", seq.Len()),
		logging.Int("largest", largest),
		logging.Dur("elapsed", elapsed))
	return seq
}

// present hands the sequence to the presenter.
func (a *Application) present(ctx context.Context, seq sequence.Sequence, out io.Writer) int {
	_, span := otel.Tracer(instrumentationName).Start(ctx, "cli.PresentSequence")
	defer span.End()

	printed, err := a.Presenter.PresentSequence(seq, a.Config.Count, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		a.Logger.Error("failed to present sequence", err)
		return apperrors.ExitErrorGeneric
	}

	span.SetAttributes(attribute.Int("fibseq.printed", printed))
	a.Metrics.ObservePrinted(printed)
	return apperrors.ExitSuccess
}

// finish records the outcome and publishes the metrics textfile if one is
// configured. A textfile failure is logged and does not change the exit code.
func (a *Application) finish(exitCode int) {
	status := metrics.StatusSuccess
	if exitCode != apperrors.ExitSuccess {
		status = metrics.StatusFailure
	}
	a.Metrics.RecordRun(status)

	path := a.Config.MetricsFile
	if path == "" {
		return
	}
	if err := a.Metrics.WriteTextfile(path); err != nil {
		a.Logger.Warn("failed to write metrics textfile", logging.String("path", path), logging.Err(err))
		return
	}
	a.Logger.Debug("metrics textfile written", logging.String("path", path))
}
