package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hapkiduki/measure-go/internal/application/dto"
	"github.com/hapkiduki/measure-go/internal/application/measure"
	"github.com/hapkiduki/measure-go/internal/application/packing"
	"github.com/hapkiduki/measure-go/internal/infrastructure/packer/firstfit"
)

// errUnreadableRequest is returned when the request document cannot be loaded.
var errUnreadableRequest = errors.New("unreadable pack request")

type packOptions struct {
	file     string
	rounding string
}

func newPackCommand(a *app) *cobra.Command {
	opts := packOptions{}

	cmd := &cobra.Command{
		Use:   "pack --file REQUEST",
		Short: "Pack products into boxes",
		Long: `Pack products into boxes.

The request is a YAML or JSON document listing box types and items:

  boxes:
    - name: small
      length: 30
      width: 20
      height: 10
      unit: CENTIMETER
      quantity: 5
  items:
    - sku: MUG-01
      length: 12
      width: 9
      height: 10
      unit: CENTIMETER
      weight: 350
      weight_unit: GRAM
      count: 4

Dimensions are converted to whole centimeters and weights to whole grams
before packing; --rounding decides how fractions are dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			req, err := readPackRequest(opts.file, cmd.InOrStdin())
			if err != nil {
				return a.fail(ctx, err)
			}
			if errs := measure.ValidatePackRequest(req); len(errs) > 0 {
				return a.invalid(ctx, errs)
			}

			roundingName := a.cfg.Packing.Rounding
			if opts.rounding != "" {
				roundingName = opts.rounding
			}
			rounding, err := packing.ParseRounding(roundingName)
			if err != nil {
				return a.fail(ctx, err)
			}

			log := a.portLogger(ctx)
			planner := measure.NewPlanner(firstfit.NewPacker(log), log, measure.PackDefaults{
				BoxQuantity:   a.cfg.Packing.DefaultBoxQuantity,
				AllowRotation: a.cfg.Packing.AllowRotation,
				Rounding:      rounding,
			})

			resp, err := planner.Pack(ctx, req)
			if err != nil {
				return a.fail(ctx, err)
			}
			return respond(a, resp)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", `request document, "-" reads stdin`)
	cmd.Flags().StringVar(&opts.rounding, "rounding", "", "override the configured rounding (truncate, nearest, ceil)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// readPackRequest decodes a YAML or JSON request. JSON is valid YAML.
func readPackRequest(path string, stdin io.Reader) (dto.PackRequest, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return dto.PackRequest{}, fmt.Errorf("%w: %w", errUnreadableRequest, err)
	}

	var req dto.PackRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return dto.PackRequest{}, fmt.Errorf("%w: %w", errUnreadableRequest, err)
	}
	return req, nil
}
