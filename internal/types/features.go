// Package types provides type definitions for structured data used throughout the gem-translator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FeatureRecord represents all attributes parsed from one GEM taxonomy string.
// Empty strings and nil pointers mean the attribute was absent from the input.
// Single-valued fields keep the first occurrence seen; list fields accumulate
// every distinct occurrence in discovery order.
type FeatureRecord struct {
	// Core structural
	Material       string   `json:"material,omitempty"`        // primary L1 material token
	MaterialL2     []string `json:"material_L2,omitempty"`     // unit technology / reinforcement tier
	MaterialL3     []string `json:"material_L3,omitempty"`     // mortar / stone-type tier
	MaterialAll    []string `json:"material_all,omitempty"`    // every material token seen, in order
	System         string   `json:"system,omitempty"`          // lateral load resisting system L1 token
	SystemL2       []string `json:"system_L2,omitempty"`       // raw system detail tokens
	InfillMaterial []string `json:"infill_material,omitempty"` // parenthetical infill sub-block
	ERD            string   `json:"erd,omitempty"`             // derived design level: L, M or H
	ERDScore       float64  `json:"erd_score"`                 // continuous design adequacy score [0,1]
	CodeLevel      string   `json:"code_level,omitempty"`
	DuctilityToken string   `json:"ductility_token,omitempty"`

	// Height
	HeightStories *int   `json:"height_stories,omitempty"`
	HeightBin     string `json:"height_bin,omitempty"` // L (1-3), M (4-7), H (8+)

	// Year
	YearValue     *int   `json:"year_value,omitempty"` // midpoint for ranges
	YearTokenKind string `json:"year_token_kind,omitempty"`

	// Secondary attributes
	Occupancy             string   `json:"occupancy,omitempty"`
	OccupancyDetail       string   `json:"occupancy_detail,omitempty"`
	Directions            []string `json:"directions,omitempty"`
	Position              string   `json:"position,omitempty"`
	PlanShape             string   `json:"plan_shape,omitempty"`
	IrregularityL1        string   `json:"irregularity_L1,omitempty"`
	IrregularityPlanTypes []string `json:"irregularity_plan_types,omitempty"`
	IrregularityVertTypes []string `json:"irregularity_vert_types,omitempty"`
	ExteriorWalls         []string `json:"exterior_walls,omitempty"`
	RoofShape             string   `json:"roof_shape,omitempty"`
	RoofCovering          string   `json:"roof_covering,omitempty"`
	RoofSystemMaterial    string   `json:"roof_system_material,omitempty"`
	RoofConnections       []string `json:"roof_connections,omitempty"`
	FloorMaterial         string   `json:"floor_material,omitempty"`
	FloorConnection       string   `json:"floor_connection,omitempty"`
	Foundation            string   `json:"foundation,omitempty"`

	// Derived
	Family string `json:"family,omitempty"` // RC, MASONRY, STEEL or TIMBER

	// Raw slash-separated blocks, for trace output
	RawBlocks []string `json:"raw_blocks,omitempty"`
}

// HasMaterial reports whether a primary material was parsed.
func (f *FeatureRecord) HasMaterial() bool { return f.Material != "" }

// HasSystem reports whether a lateral system was parsed.
func (f *FeatureRecord) HasSystem() bool { return f.System != "" }

// HasHeight reports whether a usable height bin was derived.
func (f *FeatureRecord) HasHeight() bool { return f.HeightBin != "" }

// HasDuctility reports whether an explicit ductility token was parsed.
func (f *FeatureRecord) HasDuctility() bool { return f.DuctilityToken != "" }
