package measure

import (
	"context"
	"errors"
	"fmt"

	"github.com/hapkiduki/measure-go/internal/application/dto"
	"github.com/hapkiduki/measure-go/internal/application/packing"
	"github.com/hapkiduki/measure-go/internal/application/port"
	"github.com/hapkiduki/measure-go/internal/domain/entity"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
	"github.com/hapkiduki/measure-go/internal/domain/valueobject"
)

// Pack request errors.
var (
	ErrEmptyRequest = errors.New("pack request needs at least one box and one item")
	ErrInvalidCount = errors.New("item count cannot be negative")
)

// PackDefaults holds the values applied to request entries that leave them out.
type PackDefaults struct {
	// BoxQuantity is the supply of a box type without a quantity.
	BoxQuantity int

	// AllowRotation is the rotation permission of an item without one.
	AllowRotation bool

	// Rounding is the integer conversion policy of the run.
	Rounding packing.Rounding
}

// DefaultPackDefaults mirrors the packing service defaults.
func DefaultPackDefaults() PackDefaults {
	return PackDefaults{
		BoxQuantity:   packing.DefaultBoxQuantity,
		AllowRotation: true,
		Rounding:      packing.RoundingTruncate,
	}
}

// Planner runs pack requests against a solver.
type Planner struct {
	solver   port.Packer
	logger   port.Logger
	defaults PackDefaults
	opts     []packing.Option
}

// NewPlanner creates a Planner.
//
// Parameters:
//   - solver: the bin-packing solver
//   - logger: structured logger
//   - defaults: values for entries that leave them out
//   - opts: extra packing service options (e.g. a reference generator)
func NewPlanner(solver port.Packer, logger port.Logger, defaults PackDefaults, opts ...packing.Option) *Planner {
	return &Planner{solver: solver, logger: logger, defaults: defaults, opts: opts}
}

// Pack builds boxes and products from req, packs them and reports the result.
// An item with a Count above one is registered that many times.
//
// Returns:
//   - dto.PackResponse: the filled boxes by box name, and the SKUs left unpacked
//   - error: ErrEmptyRequest, a validation error naming the entry, or a packing error
func (p *Planner) Pack(ctx context.Context, req dto.PackRequest) (dto.PackResponse, error) {
	if len(req.Boxes) == 0 || len(req.Items) == 0 {
		return dto.PackResponse{}, ErrEmptyRequest
	}

	opts := append([]packing.Option{packing.WithRounding(p.defaults.Rounding)}, p.opts...)
	svc := packing.NewService(p.solver, p.logger, opts...)

	names := make(map[string]string, len(req.Boxes))
	for i, br := range req.Boxes {
		name := br.Name
		if name == "" {
			name = fmt.Sprintf("box-%d", i+1)
		}
		box, err := BuildBox(br)
		if err != nil {
			return dto.PackResponse{}, fmt.Errorf("box %q: %w", name, err)
		}
		quantity := br.Quantity
		if quantity == 0 {
			quantity = p.defaults.BoxQuantity
		}
		ref, err := svc.AddBox(box, quantity)
		if err != nil {
			return dto.PackResponse{}, fmt.Errorf("box %q: %w", name, err)
		}
		names[ref] = name
	}

	for _, ir := range req.Items {
		if ir.Count < 0 {
			return dto.PackResponse{}, fmt.Errorf("item %q: %w", ir.SKU, ErrInvalidCount)
		}
		product, err := buildProduct(ir)
		if err != nil {
			return dto.PackResponse{}, fmt.Errorf("item %q: %w", ir.SKU, err)
		}
		rotate := p.defaults.AllowRotation
		if ir.AllowRotation != nil {
			rotate = *ir.AllowRotation
		}
		count := max(ir.Count, 1)
		for i := 0; i < count; i++ {
			if _, err := svc.AddItem(product, rotate); err != nil {
				return dto.PackResponse{}, fmt.Errorf("item %q: %w", ir.SKU, err)
			}
		}
	}

	result, err := svc.Pack(ctx)
	if err != nil {
		return dto.PackResponse{}, err
	}
	return toPackResponse(result, names), nil
}

func buildProduct(req dto.ItemRequest) (*entity.Product, error) {
	lengthUnit, err := unit.ParseLength(req.Unit)
	if err != nil {
		return nil, err
	}
	weight, err := parseWeight(req.Weight, req.WeightUnit)
	if err != nil {
		return nil, err
	}
	return entity.NewProductInUnits(req.SKU, req.Name, lengthUnit, weight.Unit(),
		req.Length, req.Width, req.Height, weight.Value())
}

func toPackResponse(result packing.Result, names map[string]string) dto.PackResponse {
	resp := dto.PackResponse{
		Boxes:    make([]dto.PackedBoxResponse, 0, len(result.Boxes)),
		Unpacked: make([]string, 0, len(result.Unpacked)),
	}
	for _, b := range result.Boxes {
		items := make([]string, 0, b.Len())
		for _, product := range b.Items() {
			items = append(items, product.SKU())
		}
		resp.Boxes = append(resp.Boxes, dto.PackedBoxResponse{
			Box:         names[b.BoxReference],
			TotalWeight: toResponse[valueobject.Weight, unit.Weight](b.Weight()),
			Items:       items,
		})
	}
	for _, product := range result.Unpacked {
		resp.Unpacked = append(resp.Unpacked, product.SKU())
	}
	return resp
}
