package measure

import (
	"fmt"

	"github.com/hapkiduki/measure-go/internal/application/dto"
	"github.com/hapkiduki/measure-go/internal/domain/unit"
)

// ValidatePackRequest checks every field of req and reports all problems at
// once. An empty result means the request can be packed.
func ValidatePackRequest(req dto.PackRequest) []dto.ValidationError {
	var errs []dto.ValidationError
	add := func(field, msg string, value any) {
		errs = append(errs, dto.ValidationError{Field: field, Message: msg, Value: value})
	}

	if len(req.Boxes) == 0 {
		add("boxes", "at least one box is required", nil)
	}
	if len(req.Items) == 0 {
		add("items", "at least one item is required", nil)
	}

	for i, b := range req.Boxes {
		prefix := fmt.Sprintf("boxes[%d]", i)
		checkLengths(add, prefix, b.Unit, b.Length, b.Width, b.Height)
		if b.Weight != nil {
			checkWeight(add, prefix, b.WeightUnit, *b.Weight)
		}
		if b.Quantity < 0 {
			add(prefix+".quantity", "must not be negative", b.Quantity)
		}
	}

	for i, it := range req.Items {
		prefix := fmt.Sprintf("items[%d]", i)
		if it.SKU == "" {
			add(prefix+".sku", "is required", nil)
		}
		checkLengths(add, prefix, it.Unit, it.Length, it.Width, it.Height)
		checkWeight(add, prefix, it.WeightUnit, it.Weight)
		if it.Count < 0 {
			add(prefix+".count", "must not be negative", it.Count)
		}
	}
	return errs
}

func checkLengths(add func(string, string, any), prefix, unitName string, dims ...float64) {
	if _, err := unit.ParseLength(unitName); err != nil {
		add(prefix+".unit", "must be one of "+fmt.Sprint(unit.Names(unit.Lengths())), unitName)
	}
	for i, field := range []string{"length", "width", "height"} {
		if dims[i] <= 0 {
			add(prefix+"."+field, "must be positive", dims[i])
		}
	}
}

func checkWeight(add func(string, string, any), prefix, unitName string, value float64) {
	if unitName != "" {
		if _, err := unit.ParseWeight(unitName); err != nil {
			add(prefix+".weight_unit", "must be one of "+fmt.Sprint(unit.Names(unit.Weights())), unitName)
		}
	}
	if value < 0 {
		add(prefix+".weight", "must not be negative", value)
	}
}
