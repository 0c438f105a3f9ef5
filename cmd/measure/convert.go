package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hapkiduki/measure-go/internal/application/measure"
)

func newConvertCommand(a *app) *cobra.Command {
	dims := make([]string, 0, len(measure.Dimensions()))
	for _, d := range measure.Dimensions() {
		dims = append(dims, string(d))
	}

	return &cobra.Command{
		Use:   "convert DIMENSION VALUE FROM TO",
		Short: "Convert a value between two units of one dimension",
		Long: fmt.Sprintf(`Convert a value between two units of one dimension.

Dimensions: %s`, strings.Join(dims, ", ")),
		Example: `  measure convert length 12 INCH CENTIMETER
  measure convert temperature 451 FAHRENHEIT CELSIUS
  measure convert data-storage 1 PEBIBYTE GIBIBYTE`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return a.fail(ctx, fmt.Errorf("value %q: %w", args[1], err))
			}

			resp, err := measure.Convert(args[0], value, args[2], args[3])
			if err != nil {
				return a.fail(ctx, err)
			}
			a.log.WithContext(ctx).Debug("converted",
				"dimension", resp.Dimension, "from", resp.From.Unit, "to", resp.To.Unit)
			return respond(a, resp)
		},
	}
}

// unitsListing is the data of the units command.
type unitsListing map[string][]string

func newUnitsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units [DIMENSION]",
		Short: "List the unit names of every dimension, or of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dims := measure.Dimensions()
			if len(args) == 1 {
				d, err := measure.ParseDimension(args[0])
				if err != nil {
					return a.fail(cmd.Context(), err)
				}
				dims = []measure.Dimension{d}
			}

			listing := make(unitsListing, len(dims))
			for _, d := range dims {
				listing[string(d)] = d.Units()
			}
			return respond(a, listing)
		},
	}
}
