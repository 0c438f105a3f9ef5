package dto

// BoxDescriptor is a box type as seen by the packing solver.
// Dimensions are whole centimeters, weights whole grams.
type BoxDescriptor struct {
	Reference   string `json:"reference"`
	OuterWidth  int    `json:"outer_width"`
	OuterLength int    `json:"outer_length"`
	OuterDepth  int    `json:"outer_depth"`
	InnerWidth  int    `json:"inner_width"`
	InnerLength int    `json:"inner_length"`
	InnerDepth  int    `json:"inner_depth"`
	EmptyWeight int    `json:"empty_weight"`

	// Quantity is how many boxes of this type are available.
	Quantity int `json:"quantity"`
}

// InnerVolume returns the usable volume in cubic centimeters.
func (b BoxDescriptor) InnerVolume() int {
	return b.InnerWidth * b.InnerLength * b.InnerDepth
}

// ItemDescriptor is an item as seen by the packing solver.
type ItemDescriptor struct {
	Reference string `json:"reference"`
	Width     int    `json:"width"`
	Length    int    `json:"length"`
	Depth     int    `json:"depth"`
	Weight    int    `json:"weight"`

	// AllowRotation permits any orientation. When false the item keeps its
	// depth vertical and may only turn on the horizontal plane.
	AllowRotation bool `json:"allow_rotation"`
}

// Volume returns the item volume in cubic centimeters.
func (i ItemDescriptor) Volume() int {
	return i.Width * i.Length * i.Depth
}

// PackedBox is one box filled by the solver.
type PackedBox struct {
	BoxReference   string   `json:"box_reference"`
	ItemReferences []string `json:"item_references"`
}
