package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hapkiduki/measure-go/internal/application/dto"
	"github.com/hapkiduki/measure-go/internal/application/measure"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
)

type boxOptions struct {
	unit       string
	weight     float64
	weightUnit string
}

func newBoxCommand(a *app) *cobra.Command {
	opts := boxOptions{}

	cmd := &cobra.Command{
		Use:   "box LENGTH WIDTH HEIGHT",
		Short: "Describe a box: inner dimensions, weight, volume and surface area",
		Long: `Describe a box: inner dimensions, weight, volume and surface area.

Without --weight the box weight is estimated from its cardboard surface.`,
		Example: `  measure box 30 20 10 --unit CENTIMETER
  measure box 12 8 4 --unit INCH --weight 9 --weight-unit OUNCE`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var dims [3]float64
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return a.fail(ctx, fmt.Errorf("dimension %q: %w", arg, err))
				}
				dims[i] = v
			}

			req := dto.BoxRequest{
				Length: dims[0], Width: dims[1], Height: dims[2],
				Unit:       opts.unit,
				WeightUnit: opts.weightUnit,
			}
			if cmd.Flags().Changed("weight") {
				req.Weight = &opts.weight
			}

			report, err := measure.DescribeBox(req)
			if err != nil {
				return a.fail(ctx, err)
			}
			return respond(a, report)
		},
	}

	cmd.Flags().StringVar(&opts.unit, "unit", string(unit.Centimeter), "length unit of the dimensions")
	cmd.Flags().Float64Var(&opts.weight, "weight", 0, "weight of the empty box (estimated when omitted)")
	cmd.Flags().StringVar(&opts.weightUnit, "weight-unit", string(unit.Kilogram), "unit of --weight")
	return cmd
}
