// Package config provides the configuration tables consumed by the translation
// engine: the EMS vocabulary, design-level mapping, token aliases, type
// assignment rules, fallback priors, exact overrides, vulnerability-class
// modifiers and global tuning constants. Tables are read-only after engine
// construction; malformed tables fail fast at load/validation time.
package config

// TypeDef describes one EMS structural type: its material family, prior
// vulnerability-class distribution and the hard inclusive class range outside
// which probability mass may never sit.
type TypeDef struct {
	Family     string             `json:"family" validate:"required,oneof=RC MASONRY STEEL TIMBER"`
	Label      string             `json:"label"`
	Prior      map[string]float64 `json:"vc_prior" validate:"required"`
	MostLikely string             `json:"vc_most_likely" validate:"required,oneof=A B C D E F"`
	RangeMin   string             `json:"vc_range_min" validate:"required,oneof=A B C D E F"`
	RangeMax   string             `json:"vc_range_max" validate:"required,oneof=A B C D E F"`
	Doc        string             `json:"doc,omitempty"`
}

// DesignLevel maps a (code level, ductility) token pair to a derived seismic
// design level and continuous score. Empty CodeLevel or Ductility acts as a
// wildcard for the partial-key fallback chain.
type DesignLevel struct {
	CodeLevel string  `json:"code_level,omitempty"`
	Ductility string  `json:"ductility,omitempty"`
	Level     string  `json:"erd" validate:"required,oneof=L M H"`
	Score     float64 `json:"erd_score" validate:"gte=0,lte=1"`
	Label     string  `json:"label,omitempty"`
}

// RuleConditions is the condition set of a type assignment rule. All present
// conditions must hold (AND); list membership is OR within the list.
type RuleConditions struct {
	MaterialAny   []string `json:"material_any,omitempty"`    // primary, L2 or any seen material
	MaterialL2Any []string `json:"material_L2_any,omitempty"` // detail tier only
	SystemAny     []string `json:"system_any,omitempty"`
	Family        string   `json:"family,omitempty"`
	MissingAny    []string `json:"missing_any,omitempty"` // feature names that must be absent
}

// RuleAction is what a type assignment rule does when it fires. Exactly one
// field is set.
type RuleAction struct {
	Family   string `json:"family,omitempty"`       // pass 1: fix the material family
	Type     string `json:"ems_type,omitempty"`     // deterministic single type
	Template string `json:"ems_template,omitempty"` // e.g. "RC1-{erd}"
	Fallback string `json:"fallback,omitempty"`     // key into FallbackPriors
}

// TypeRule is one entry of the ordered type assignment cascade. Lower priority
// is evaluated first; the first matching rule wins.
type TypeRule struct {
	ID                string         `json:"id" validate:"required"`
	Priority          int            `json:"priority"`
	If                RuleConditions `json:"if"`
	Then              RuleAction     `json:"then"`
	ConfidencePenalty float64        `json:"confidence_penalty" validate:"gt=0,lte=1"`
	Doc               string         `json:"doc,omitempty"`
}

// TypeWeight is one (EMS type, weight) entry of a fallback prior distribution.
type TypeWeight struct {
	Type   string  `json:"ems_type" validate:"required"`
	Weight float64 `json:"weight" validate:"gt=0"`
}

// Rubric maps attribute completeness to a base confidence score.
type Rubric struct {
	Full                 float64 `json:"material_system_height_erd" validate:"gt=0,lte=1"`
	MaterialSystemHeight float64 `json:"material_system_height" validate:"gt=0,lte=1"`
	MaterialHeight       float64 `json:"material_height" validate:"gt=0,lte=1"`
	MaterialOnly         float64 `json:"material" validate:"gt=0,lte=1"`
	Partial              float64 `json:"partial" validate:"gt=0,lte=1"`
}

// Override is an exact-match short circuit: when the full input string equals
// Input, the engine bypasses classification and returns a synthetic result
// built from Type's prior (or a forced single class when VCClass is set).
type Override struct {
	Input      string  `json:"gem" validate:"required"`
	Type       string  `json:"ems_type" validate:"required"`
	VCClass    string  `json:"vc_class,omitempty" validate:"omitempty,oneof=A B C D E F"`
	Confidence float64 `json:"confidence,omitempty" validate:"gte=0,lte=1"`
	Doc        string  `json:"doc,omitempty"`
}

// ModifierConditions is the condition set of a vulnerability-class modifier.
// All present conditions must hold. A nil list places no constraint. A
// non-nil *empty* PlanTypesAny or VertTypesAny requires the corresponding
// parsed list to be empty — this sentinel keeps the generic-irregularity
// modifier from double-counting alongside the specific ones.
type ModifierConditions struct {
	FamilyIs          string   `json:"family_is,omitempty"`
	FamilyIn          []string `json:"family_in,omitempty"`
	MaterialIs        string   `json:"material_is,omitempty"`
	MaterialAny       []string `json:"material_any,omitempty"`
	MaterialL2Any     []string `json:"material_L2_any,omitempty"`
	MaterialL3Any     []string `json:"material_L3_any,omitempty"`
	SystemIs          string   `json:"system_is,omitempty"`
	SystemAny         []string `json:"system_any,omitempty"`
	InfillAny         []string `json:"infill_any,omitempty"`
	ERDIs             string   `json:"erd_is,omitempty"`
	ERDScoreBelow     *float64 `json:"erd_score_below,omitempty"`
	ERDScoreAtLeast   *float64 `json:"erd_score_above,omitempty"`
	DuctilityIs       string   `json:"ductility_token_is,omitempty"`
	DuctilityIn       []string `json:"ductility_token_in,omitempty"`
	CodeLevelIs       string   `json:"code_level_is,omitempty"`
	HeightBinIs       string   `json:"height_bin_is,omitempty"`
	HeightBinIn       []string `json:"height_bin_in,omitempty"`
	StoriesAbove      *int     `json:"height_stories_above,omitempty"`
	YearKnown         *bool    `json:"year_known,omitempty"`
	YearBefore        *int     `json:"year_before,omitempty"`
	YearAtLeast       *int     `json:"year_after_eq,omitempty"`
	OccupancyIs       string   `json:"occupancy_L1_is,omitempty"`
	OccupancyDetailIn []string `json:"occupancy_detail_in,omitempty"`
	PositionIn        []string `json:"position_in,omitempty"`
	PlanShapeIn       []string `json:"plan_shape_in,omitempty"`
	IrregularityL1Is  string   `json:"irregularity_L1_is,omitempty"`
	PlanTypesAny      []string `json:"irregularity_plan_type_in,omitempty"`
	VertTypesAny      []string `json:"irregularity_vert_type_in,omitempty"`
	RoofCoveringIn    []string `json:"roof_covering_in,omitempty"`
	RoofSystemIn      []string `json:"roof_system_in,omitempty"` // prefix match
	FloorMaterialIn   []string `json:"floor_material_in,omitempty"`
	FloorConnIs       string   `json:"floor_conn_is,omitempty"`
	RoofConnIn        []string `json:"roof_conn_in,omitempty"`
	FoundationIn      []string `json:"foundation_in,omitempty"`
	ExteriorWallAny   []string `json:"exterior_wall_any,omitempty"`
	TypeIn            []string `json:"ems_type_in,omitempty"` // dominant candidate's type
}

// Modifier nudges the vulnerability distribution when its conditions hold.
// Positive Shift marks an adverse attribute, negative a favorable one; the
// clamped sum of all fired shifts is applied as a single slide of the
// distribution inside the dominant type's class range.
type Modifier struct {
	ID                string             `json:"id" validate:"required"`
	Doc               string             `json:"doc,omitempty"`
	If                ModifierConditions `json:"if"`
	Shift             float64            `json:"shift"`
	ConfidencePenalty float64            `json:"confidence_penalty" validate:"gt=0,lte=1"`
	MaxContribution   *float64           `json:"max_contribution,omitempty" validate:"omitempty,gt=0"`
}

// Tuning holds the global constants of the shift and confidence computations.
type Tuning struct {
	MaxCumulativeShift  float64 `json:"max_cumulative_shift" validate:"gt=0"`
	EntropyPenaltyAlpha float64 `json:"entropy_penalty_alpha" validate:"gte=0,lte=1"`
	// FailsafeType is returned when no rule matches or a candidate type is
	// missing from the vocabulary.
	FailsafeType             string  `json:"failsafe_type" validate:"required"`
	FailsafeConfidence       float64 `json:"failsafe_confidence" validate:"gt=0,lte=1"`
	InvalidTypeConfidenceCap float64 `json:"invalid_type_confidence_cap" validate:"gt=0,lte=1"`
	OverrideConfidence       float64 `json:"override_confidence" validate:"gt=0,lte=1"`
}

// Config is the full, immutable configuration of a translator instance.
type Config struct {
	Vocabulary     map[string]TypeDef      `json:"vocabulary" validate:"required,min=1,dive"`
	DesignLevels   []DesignLevel           `json:"design_levels" validate:"required,min=1,dive"`
	Aliases        map[string]string       `json:"aliases"`
	TypeRules      []TypeRule              `json:"type_rules" validate:"required,min=1,dive"`
	FallbackPriors map[string][]TypeWeight `json:"fallback_priors" validate:"required"`
	Rubric         Rubric                  `json:"confidence_rubric"`
	Overrides      []Override              `json:"exact_overrides" validate:"dive"`
	Modifiers      []Modifier              `json:"vc_modifiers" validate:"dive"`
	Tuning         Tuning                  `json:"tuning"`
}

// ResolveDesignLevel looks up the design level for a (code level, ductility)
// pair, trying the exact pair, then code level alone, then ductility alone,
// then the default entry with both fields empty.
func (c *Config) ResolveDesignLevel(codeLevel, ductility string) DesignLevel {
	find := func(code, duct string) *DesignLevel {
		for i := range c.DesignLevels {
			dl := &c.DesignLevels[i]
			if dl.CodeLevel == code && dl.Ductility == duct {
				return dl
			}
		}
		return nil
	}
	for _, key := range [][2]string{{codeLevel, ductility}, {codeLevel, ""}, {"", ductility}, {"", ""}} {
		if dl := find(key[0], key[1]); dl != nil {
			return *dl
		}
	}
	// No default entry configured; conservative floor.
	return DesignLevel{Level: "L", Score: 0.10, Label: "no ductility info"}
}
