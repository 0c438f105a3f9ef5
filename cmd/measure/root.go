package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hapkiduki/measure-go/internal/application/dto"
	"github.com/hapkiduki/measure-go/internal/application/measure"
	"github.com/hapkiduki/measure-go/internal/application/packing"
	"github.com/hapkiduki/measure-go/internal/application/port"
	"github.com/hapkiduki/measure-go/internal/domain/conversion"
	"github.com/hapkiduki/measure-go/internal/domain/entity"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
	"github.com/hapkiduki/measure-go/internal/infrastructure/config"
	"github.com/hapkiduki/measure-go/internal/infrastructure/logging"
	"github.com/hapkiduki/measure-go/pkg/logger"
)

// app holds what every command shares once the root command has initialized.
type app struct {
	out    io.Writer
	errOut io.Writer

	cfg         *config.Config
	log         *logger.Logger
	operationID string
}

type rootOptions struct {
	configFile string
	logLevel   string
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	opts := rootOptions{}

	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Convert measurement units, describe boxes and pack products",
		Long: `measure works with typed quantities: lengths, weights, areas, volumes,
pressures, speeds, temperatures and data storage sizes.

Unit names are canonical and case-sensitive, e.g. METER, KILOGRAM, SQ_FOOT.
Run "measure units" to list them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// stderr sync fails on some platforms, nothing to do about it
			_ = a.log.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "",
		"config file (default searches config.yaml in ., ./configs and /etc/measure-go)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level")

	cmd.AddCommand(
		newConvertCommand(a),
		newUnitsCommand(a),
		newBoxCommand(a),
		newPackCommand(a),
		newVersionCommand(a),
	)
	a.wrapCommands(cmd)
	return cmd
}

// init loads configuration, builds the logger and tags the command context.
func (a *app) init(cmd *cobra.Command, opts rootOptions) error {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	a.cfg = cfg

	a.log, err = logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.IsDevelopment(),
		Output:      a.errOut,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.operationID = uuid.NewString()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, logger.OperationIDKey, a.operationID)
	ctx = context.WithValue(ctx, logger.CommandKey, cmd.Name())
	cmd.SetContext(ctx)

	a.log.WithContext(ctx).Debug("command started", "version", version, "environment", cfg.App.Environment)
	return nil
}

// portLogger returns the logger for the application layer, tagged with ctx.
func (a *app) portLogger(ctx context.Context) port.Logger {
	return logging.NewAdapter(a.log).WithContext(ctx)
}

// reportedError marks an error whose response was already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// respond prints a success envelope around data.
func respond[T any](a *app, data T) error {
	resp := dto.NewSuccessResponse(data)
	resp.Meta = a.meta()
	return a.write(resp)
}

// fail prints an error envelope for err and returns it marked as reported.
func (a *app) fail(ctx context.Context, err error) error {
	code := errorCode(err)
	a.log.WithContext(ctx).Error("command failed", "code", code, "error", err)

	resp := dto.NewErrorResponse[any](code, err.Error())
	resp.Meta = a.meta()
	if werr := a.write(resp); werr != nil {
		return werr
	}
	return &reportedError{err: err}
}

// invalid prints a validation error envelope.
func (a *app) invalid(ctx context.Context, errs []dto.ValidationError) error {
	a.log.WithContext(ctx).Warn("request rejected", "validation_errors", len(errs))

	resp := dto.NewValidationErrorResponse[any](errs)
	resp.Meta = a.meta()
	if err := a.write(resp); err != nil {
		return err
	}
	return &reportedError{err: fmt.Errorf("request validation failed with %d errors", len(errs))}
}

func (a *app) meta() *dto.ResponseMeta {
	return &dto.ResponseMeta{
		OperationID: a.operationID,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Version:     version,
	}
}

func (a *app) write(v any) error {
	enc := json.NewEncoder(a.out)
	if a.cfg == nil || a.cfg.Output.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// errorCode maps domain errors to stable response codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, strconv.ErrSyntax), errors.Is(err, strconv.ErrRange),
		errors.Is(err, conversion.ErrNonFiniteValue):
		return "INVALID_ARGUMENT"
	case errors.Is(err, measure.ErrUnknownDimension):
		return "UNKNOWN_DIMENSION"
	case errors.Is(err, unit.ErrUnknownUnit):
		return "UNKNOWN_UNIT"
	case errors.Is(err, conversion.ErrUnsupportedConversion):
		return "UNSUPPORTED_CONVERSION"
	case errors.Is(err, entity.ErrInvalidDimension):
		return "INVALID_DIMENSION"
	case errors.Is(err, errUnreadableRequest), errors.Is(err, measure.ErrEmptyRequest), errors.Is(err, measure.ErrInvalidCount),
		errors.Is(err, entity.ErrInvalidProductSKU), errors.Is(err, packing.ErrInvalidQuantity),
		errors.Is(err, packing.ErrInvalidRounding):
		return "INVALID_REQUEST"
	case errors.Is(err, packing.ErrUnknownReference), errors.Is(err, packing.ErrDuplicateItem),
		errors.Is(err, packing.ErrSupplyExceeded):
		return "PACKING_FAILED"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "CANCELLED"
	default:
		return "INTERNAL_ERROR"
	}
}
