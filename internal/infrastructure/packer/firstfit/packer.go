// Package firstfit provides an in-process implementation of the packing solver port.
// It is a first-fit decreasing heuristic: items are placed largest first into the
// first open box that still has room, and a new box is opened, smallest type first,
// only when no open box can take the item.
//
// Room is tracked as remaining volume together with an orientation check of the
// item against the inner dimensions of the box. Item positions inside a box are
// not computed, so a result can be optimistic for awkward shapes. Weight is not
// limited.
package firstfit

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/hapkiduki/measure-go/internal/application/dto"
	"github.com/hapkiduki/measure-go/internal/application/port"
)

// ErrInvalidDescriptor is returned when a box or item descriptor cannot be packed.
var ErrInvalidDescriptor = errors.New("invalid packing descriptor")

// Packer implements port.Packer.
type Packer struct {
	logger port.Logger
}

var _ port.Packer = (*Packer)(nil)

// NewPacker creates a first-fit packer.
//
// Parameters:
//   - logger: receives one debug entry per opened box
func NewPacker(logger port.Logger) *Packer {
	return &Packer{logger: logger}
}

// openBox is a box in use during a run.
type openBox struct {
	box       dto.BoxDescriptor
	remaining int
	items     []string
}

// Pack distributes items over the available boxes.
//
// Returns:
//   - []dto.PackedBox: the used boxes in the order they were opened
//   - error: ErrInvalidDescriptor, or the context error when ctx is done
func (p *Packer) Pack(ctx context.Context, boxes []dto.BoxDescriptor, items []dto.ItemDescriptor) ([]dto.PackedBox, error) {
	if err := validate(boxes, items); err != nil {
		return nil, err
	}

	types := slices.Clone(boxes)
	sort.SliceStable(types, func(i, j int) bool {
		return types[i].InnerVolume() < types[j].InnerVolume()
	})
	supply := make([]int, len(types))
	for i, b := range types {
		supply[i] = b.Quantity
	}

	ordered := slices.Clone(items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Volume() > ordered[j].Volume()
	})

	var open []*openBox
	for _, item := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if target := firstOpen(open, item); target != nil {
			target.add(item)
			continue
		}

		for i, b := range types {
			if supply[i] == 0 || !fits(b, item) {
				continue
			}
			supply[i]--
			ob := &openBox{box: b, remaining: b.InnerVolume()}
			ob.add(item)
			open = append(open, ob)
			p.logger.Debug("box opened", "box", b.Reference, "left", supply[i])
			break
		}
	}

	packed := make([]dto.PackedBox, len(open))
	for i, ob := range open {
		packed[i] = dto.PackedBox{BoxReference: ob.box.Reference, ItemReferences: ob.items}
	}
	return packed, nil
}

func firstOpen(open []*openBox, item dto.ItemDescriptor) *openBox {
	for _, ob := range open {
		if item.Volume() <= ob.remaining && fits(ob.box, item) {
			return ob
		}
	}
	return nil
}

func (b *openBox) add(item dto.ItemDescriptor) {
	b.remaining -= item.Volume()
	b.items = append(b.items, item.Reference)
}

// fits reports whether the item passes through the inner dimensions of box in
// some permitted orientation. Without rotation the depth stays vertical.
func fits(box dto.BoxDescriptor, item dto.ItemDescriptor) bool {
	if item.AllowRotation {
		inner := []int{box.InnerWidth, box.InnerLength, box.InnerDepth}
		dims := []int{item.Width, item.Length, item.Depth}
		slices.Sort(inner)
		slices.Sort(dims)
		for i := range dims {
			if dims[i] > inner[i] {
				return false
			}
		}
		return true
	}

	if item.Depth > box.InnerDepth {
		return false
	}
	return (item.Width <= box.InnerWidth && item.Length <= box.InnerLength) ||
		(item.Width <= box.InnerLength && item.Length <= box.InnerWidth)
}

func validate(boxes []dto.BoxDescriptor, items []dto.ItemDescriptor) error {
	seen := make(map[string]struct{}, len(boxes)+len(items))
	checkRef := func(kind, ref string) error {
		if ref == "" {
			return fmt.Errorf("%w: %s without reference", ErrInvalidDescriptor, kind)
		}
		if _, dup := seen[ref]; dup {
			return fmt.Errorf("%w: duplicate reference %q", ErrInvalidDescriptor, ref)
		}
		seen[ref] = struct{}{}
		return nil
	}

	for _, b := range boxes {
		if err := checkRef("box", b.Reference); err != nil {
			return err
		}
		if b.Quantity < 0 || b.InnerWidth < 0 || b.InnerLength < 0 || b.InnerDepth < 0 {
			return fmt.Errorf("%w: box %q has negative quantity or dimension", ErrInvalidDescriptor, b.Reference)
		}
	}
	for _, it := range items {
		if err := checkRef("item", it.Reference); err != nil {
			return err
		}
		if it.Width < 0 || it.Length < 0 || it.Depth < 0 || it.Weight < 0 {
			return fmt.Errorf("%w: item %q has a negative dimension or weight", ErrInvalidDescriptor, it.Reference)
		}
	}
	return nil
}
