// Package packing adapts boxes and products to an external bin-packing solver.
//
// The Service collects box types and products, normalizes them into the
// integer centimeter and gram descriptors the solver understands, and maps
// the solver's answer back to domain objects through generated references.
//
// A Service accumulates state between calls and is not safe for concurrent
// use; give each packing job its own Service.
package packing

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/hapkiduki/measure-go/internal/application/dto"
	"github.com/hapkiduki/measure-go/internal/application/port"
	"github.com/hapkiduki/measure-go/internal/domain/entity"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
	"github.com/hapkiduki/measure-go/internal/domain/valueobject"
)

// DefaultBoxQuantity is the supply registered by AddBoxDefault.
const DefaultBoxQuantity = 100

// Packing errors define the failure modes of a packing run.
var (
	ErrInvalidQuantity  = errors.New("box quantity must be positive")
	ErrInvalidRounding  = errors.New("unknown rounding policy")
	ErrNilProduct       = errors.New("product cannot be nil")
	ErrUnknownReference = errors.New("unknown packing reference")
	ErrDuplicateItem    = errors.New("item packed more than once")
	ErrSupplyExceeded   = errors.New("box supply exceeded")
)

// BoxEntry is a registered box type.
type BoxEntry struct {
	Reference string
	Box       entity.Box
	Quantity  int
}

// ItemEntry is a registered product to pack.
type ItemEntry struct {
	Reference     string
	Product       *entity.Product
	AllowRotation bool
}

// PackedBox is a filled box together with the reference of its box type.
type PackedBox struct {
	BoxReference string
	entity.FulfilledBox
}

// Result is the outcome of a packing run.
type Result struct {
	// Boxes lists the filled boxes in solver order.
	Boxes []PackedBox

	// Unpacked lists the products the solver could not place, in registration order.
	Unpacked []*entity.Product
}

// Service registers boxes and items and runs them through a port.Packer.
type Service struct {
	packer   port.Packer
	logger   port.Logger
	rounding Rounding
	newID    func() string

	boxes []BoxEntry
	items []ItemEntry
}

// Option configures a Service.
type Option func(*Service)

// WithRounding sets how converted values become integers. Defaults to
// RoundingTruncate, which also replaces an unknown policy.
func WithRounding(r Rounding) Option {
	return func(s *Service) {
		if _, err := ParseRounding(string(r)); err != nil {
			r = RoundingTruncate
		}
		s.rounding = r
	}
}

// WithIDGenerator replaces the random UUID reference generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// NewService creates a new packing Service.
//
// Parameters:
//   - packer: the solver that places items into boxes
//   - logger: structured logger
//   - opts: optional rounding policy and reference generator
//
// Returns:
//   - *Service: an empty Service
func NewService(packer port.Packer, logger port.Logger, opts ...Option) *Service {
	s := &Service{
		packer:   packer,
		logger:   logger,
		rounding: RoundingTruncate,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddBox registers a box type with the number of boxes available.
//
// Parameters:
//   - box: the box type
//   - quantity: how many such boxes may be used (must be positive)
//
// Returns:
//   - string: the reference assigned to the box type
//   - error: ErrInvalidQuantity if quantity is not positive
func (s *Service) AddBox(box entity.Box, quantity int) (string, error) {
	if quantity <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	ref := s.newID()
	s.boxes = append(s.boxes, BoxEntry{Reference: ref, Box: box, Quantity: quantity})
	s.logger.Debug("box registered", "reference", ref, "box", box.String(), "quantity", quantity)
	return ref, nil
}

// AddBoxDefault registers a box type with DefaultBoxQuantity boxes available.
func (s *Service) AddBoxDefault(box entity.Box) (string, error) {
	return s.AddBox(box, DefaultBoxQuantity)
}

// AddItem registers a product to pack.
//
// Parameters:
//   - product: the product (required)
//   - allowRotation: whether the solver may turn the product on any side
//
// Returns:
//   - string: the reference assigned to the item
//   - error: ErrNilProduct if product is nil
func (s *Service) AddItem(product *entity.Product, allowRotation bool) (string, error) {
	if product == nil {
		return "", ErrNilProduct
	}

	ref := s.newID()
	s.items = append(s.items, ItemEntry{Reference: ref, Product: product, AllowRotation: allowRotation})
	s.logger.Debug("item registered", "reference", ref, "sku", product.SKU(), "allow_rotation", allowRotation)
	return ref, nil
}

// AvailableBoxes returns a copy of the registered box types.
func (s *Service) AvailableBoxes() []BoxEntry {
	return append([]BoxEntry(nil), s.boxes...)
}

// Items returns a copy of the registered items.
func (s *Service) Items() []ItemEntry {
	return append([]ItemEntry(nil), s.items...)
}

// Descriptors normalizes the registered boxes and items into solver input:
// dimensions in whole centimeters and weights in whole grams.
// Box width, length and height map to descriptor width, length and depth.
func (s *Service) Descriptors() ([]dto.BoxDescriptor, []dto.ItemDescriptor, error) {
	boxes := make([]dto.BoxDescriptor, 0, len(s.boxes))
	for _, e := range s.boxes {
		d, err := s.boxDescriptor(e)
		if err != nil {
			return nil, nil, fmt.Errorf("normalize box %s: %w", e.Reference, err)
		}
		boxes = append(boxes, d)
	}

	items := make([]dto.ItemDescriptor, 0, len(s.items))
	for _, e := range s.items {
		d, err := s.itemDescriptor(e)
		if err != nil {
			return nil, nil, fmt.Errorf("normalize item %s: %w", e.Reference, err)
		}
		items = append(items, d)
	}
	return boxes, items, nil
}

func (s *Service) boxDescriptor(e BoxEntry) (dto.BoxDescriptor, error) {
	dims := []valueobject.Length{
		e.Box.Width(), e.Box.Length(), e.Box.Height(),
		e.Box.InnerWidth(), e.Box.InnerLength(), e.Box.InnerHeight(),
	}
	cm, err := s.centimeters(e.Reference, dims...)
	if err != nil {
		return dto.BoxDescriptor{}, err
	}
	g, err := s.grams(e.Reference, e.Box.Weight())
	if err != nil {
		return dto.BoxDescriptor{}, err
	}

	return dto.BoxDescriptor{
		Reference:   e.Reference,
		OuterWidth:  cm[0],
		OuterLength: cm[1],
		OuterDepth:  cm[2],
		InnerWidth:  cm[3],
		InnerLength: cm[4],
		InnerDepth:  cm[5],
		EmptyWeight: g,
		Quantity:    e.Quantity,
	}, nil
}

func (s *Service) itemDescriptor(e ItemEntry) (dto.ItemDescriptor, error) {
	box := e.Product.Dimensions()
	cm, err := s.centimeters(e.Reference, box.Width(), box.Length(), box.Height())
	if err != nil {
		return dto.ItemDescriptor{}, err
	}
	g, err := s.grams(e.Reference, e.Product.Weight())
	if err != nil {
		return dto.ItemDescriptor{}, err
	}

	return dto.ItemDescriptor{
		Reference:     e.Reference,
		Width:         cm[0],
		Length:        cm[1],
		Depth:         cm[2],
		Weight:        g,
		AllowRotation: e.AllowRotation,
	}, nil
}

func (s *Service) centimeters(ref string, lengths ...valueobject.Length) ([]int, error) {
	out := make([]int, len(lengths))
	for i, l := range lengths {
		cm, err := l.ConvertTo(unit.Centimeter)
		if err != nil {
			return nil, err
		}
		out[i] = s.round(ref, cm.Value(), string(unit.Centimeter))
	}
	return out, nil
}

func (s *Service) grams(ref string, w valueobject.Weight) (int, error) {
	g, err := w.ToGrams()
	if err != nil {
		return 0, err
	}
	return s.round(ref, g.Value(), string(unit.Gram)), nil
}

func (s *Service) round(ref string, v float64, unitName string) int {
	n := s.rounding.apply(v)
	if s.rounding == RoundingTruncate && math.Abs(float64(n)-v) > truncateTolerance {
		s.logger.Debug("fraction dropped by truncation",
			"reference", ref, "value", v, "rounded", n, "unit", unitName)
	}
	return n
}
