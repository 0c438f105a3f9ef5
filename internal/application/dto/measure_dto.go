package dto

// QuantityResponse is a magnitude with its unit name.
type QuantityResponse struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// ConversionResponse is the result of a single unit conversion.
type ConversionResponse struct {
	Dimension string           `json:"dimension"`
	From      QuantityResponse `json:"from"`
	To        QuantityResponse `json:"to"`
}

// BoxReport describes the geometry of a box.
type BoxReport struct {
	Length       QuantityResponse `json:"length"`
	Width        QuantityResponse `json:"width"`
	Height       QuantityResponse `json:"height"`
	InnerLength  QuantityResponse `json:"inner_length"`
	InnerWidth   QuantityResponse `json:"inner_width"`
	InnerHeight  QuantityResponse `json:"inner_height"`
	Weight       QuantityResponse `json:"weight"`
	MaxDimension QuantityResponse `json:"max_dimension"`

	// VolumeCubicMeters is the outer volume in m³.
	VolumeCubicMeters float64 `json:"volume_m3"`

	// SurfaceAreaSquareMeters is the outer surface area in m².
	SurfaceAreaSquareMeters float64 `json:"surface_area_m2"`
}

// PackRequest is the document accepted by the pack command, in YAML or JSON.
type PackRequest struct {
	Boxes []BoxRequest  `json:"boxes" yaml:"boxes"`
	Items []ItemRequest `json:"items" yaml:"items"`
}

// BoxRequest describes a box type to pack into.
type BoxRequest struct {
	Name   string  `json:"name" yaml:"name"`
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Unit   string  `json:"unit" yaml:"unit"`

	// Weight of the empty box. Estimated from its surface when nil.
	Weight     *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	WeightUnit string   `json:"weight_unit,omitempty" yaml:"weight_unit,omitempty"`

	// Quantity available. The configured default applies when zero.
	Quantity int `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}

// ItemRequest describes a product to pack.
type ItemRequest struct {
	SKU        string  `json:"sku" yaml:"sku"`
	Name       string  `json:"name" yaml:"name"`
	Length     float64 `json:"length" yaml:"length"`
	Width      float64 `json:"width" yaml:"width"`
	Height     float64 `json:"height" yaml:"height"`
	Unit       string  `json:"unit" yaml:"unit"`
	Weight     float64 `json:"weight" yaml:"weight"`
	WeightUnit string  `json:"weight_unit" yaml:"weight_unit"`

	// Count is how many identical items to pack. Defaults to one.
	Count int `json:"count,omitempty" yaml:"count,omitempty"`

	// AllowRotation overrides the configured default when set.
	AllowRotation *bool `json:"allow_rotation,omitempty" yaml:"allow_rotation,omitempty"`
}

// PackResponse is the outcome of a pack command.
type PackResponse struct {
	Boxes    []PackedBoxResponse `json:"boxes"`
	Unpacked []string            `json:"unpacked"`
}

// PackedBoxResponse is one filled box in a PackResponse.
type PackedBoxResponse struct {
	Box         string           `json:"box"`
	TotalWeight QuantityResponse `json:"total_weight"`
	Items       []string         `json:"items"`
}
