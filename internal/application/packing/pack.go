package packing

import (
	"context"
	"fmt"

	"github.com/hapkiduki/measure-go/internal/application/dto"
	"github.com/hapkiduki/measure-go/internal/domain/entity"
)

// Pack normalizes the registered boxes and items, hands them to the solver
// and rebuilds its answer as filled boxes.
//
// Each filled box carries the registered entity.Box and the registered
// products, and a total weight in kilograms equal to the box weight plus the
// weights of its items. Items the solver leaves out are returned as unpacked.
//
// Parameters:
//   - ctx: cancellation, forwarded to the solver
//
// Returns:
//   - Result: filled boxes and unpacked products
//   - error: a normalization or solver error, or ErrUnknownReference,
//     ErrDuplicateItem or ErrSupplyExceeded when the solver output is inconsistent
func (s *Service) Pack(ctx context.Context) (Result, error) {
	log := s.logger.WithContext(ctx)

	boxes, items, err := s.Descriptors()
	if err != nil {
		return Result{}, err
	}

	packed, err := s.packer.Pack(ctx, boxes, items)
	if err != nil {
		return Result{}, fmt.Errorf("packing solver: %w", err)
	}

	result, err := s.reconstitute(packed)
	if err != nil {
		return Result{}, err
	}

	log.Info("packing finished",
		"box_types", len(boxes),
		"items", len(items),
		"boxes_used", len(result.Boxes),
		"unpacked", len(result.Unpacked),
	)
	if len(result.Unpacked) > 0 {
		skus := make([]string, len(result.Unpacked))
		for i, p := range result.Unpacked {
			skus[i] = p.SKU()
		}
		log.Warn("items left unpacked", "skus", skus)
	}
	return result, nil
}

func (s *Service) reconstitute(packed []dto.PackedBox) (Result, error) {
	boxByRef := make(map[string]BoxEntry, len(s.boxes))
	for _, e := range s.boxes {
		boxByRef[e.Reference] = e
	}
	itemByRef := make(map[string]ItemEntry, len(s.items))
	for _, e := range s.items {
		itemByRef[e.Reference] = e
	}

	used := make(map[string]int, len(s.boxes))
	placed := make(map[string]bool, len(s.items))
	result := Result{Boxes: make([]PackedBox, 0, len(packed))}

	for _, pb := range packed {
		boxEntry, ok := boxByRef[pb.BoxReference]
		if !ok {
			return Result{}, fmt.Errorf("%w: box %q", ErrUnknownReference, pb.BoxReference)
		}
		used[pb.BoxReference]++
		if used[pb.BoxReference] > boxEntry.Quantity {
			return Result{}, fmt.Errorf("%w: box %q used %d times, %d available",
				ErrSupplyExceeded, pb.BoxReference, used[pb.BoxReference], boxEntry.Quantity)
		}

		total, err := boxEntry.Box.Weight().ToKilograms()
		if err != nil {
			return Result{}, err
		}

		products := make([]*entity.Product, 0, len(pb.ItemReferences))
		for _, ref := range pb.ItemReferences {
			itemEntry, ok := itemByRef[ref]
			if !ok {
				return Result{}, fmt.Errorf("%w: item %q", ErrUnknownReference, ref)
			}
			if placed[ref] {
				return Result{}, fmt.Errorf("%w: item %q", ErrDuplicateItem, ref)
			}
			placed[ref] = true

			if total, err = total.Add(itemEntry.Product.Weight()); err != nil {
				return Result{}, err
			}
			products = append(products, itemEntry.Product)
		}

		result.Boxes = append(result.Boxes, PackedBox{
			BoxReference: pb.BoxReference,
			FulfilledBox: entity.NewFulfilledBox(boxEntry.Box, total, products...),
		})
	}

	for _, e := range s.items {
		if !placed[e.Reference] {
			result.Unpacked = append(result.Unpacked, e.Product)
		}
	}
	return result, nil
}
