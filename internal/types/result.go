package types

// Candidate is one weighted EMS structural-type candidate produced by the
// rule engine. Weights across a candidate set are normalized to sum to 1.
type Candidate struct {
	Type       string   `json:"ems_type"`
	Weight     float64  `json:"weight"`
	Confidence float64  `json:"confidence"`
	RuleID     string   `json:"rule_id"`
	RuleTrace  []string `json:"rule_trace,omitempty"`
	Flags      []string `json:"flags"`
}

// AppliedModifier records one fired vulnerability-class modifier for the
// audit trace. Shift is the contribution after the per-rule cap.
type AppliedModifier struct {
	ID                string  `json:"id"`
	Doc               string  `json:"doc"`
	Shift             float64 `json:"shift"`
	ConfidencePenalty float64 `json:"confidence_penalty"`
}

// Summary is the headline block of a translation result.
type Summary struct {
	BestType            string  `json:"best_ems_type"`
	BestWeight          float64 `json:"best_ems_weight"`
	VCModeBase          string  `json:"best_vc_mode_base"`
	VCModeFinal         string  `json:"best_vc_mode_final"`
	CredibleRange80     string  `json:"vc_credible_range_80"`      // post-modifier, e.g. "B-C"
	CredibleRange80Base string  `json:"vc_credible_range_80_base"` // pre-modifier
	ExactOverride       bool    `json:"exact_override"`
	ModifiersFired      int     `json:"n_modifiers_fired"`
	CumulativeShift     float64 `json:"cumulative_shift"` // after the overall cap
}

// Uncertainty quantifies how much the translation should be trusted.
type Uncertainty struct {
	MissingFeatures           []string `json:"missing_features"`
	TypeEntropy               float64  `json:"ems_entropy"`
	VCEntropy                 float64  `json:"vc_entropy"`
	VCEntropyBase             float64  `json:"vc_entropy_base"`
	Top1Margin                float64  `json:"top1_margin"`
	ModifierConfidencePenalty float64  `json:"modifier_confidence_penalty"`
	Flags                     []string `json:"flags"`
}

// Result is the complete output of translating one taxonomy string.
type Result struct {
	Input            string            `json:"gem_str"`
	Parsed           *FeatureRecord    `json:"parsed"`
	Candidates       []Candidate       `json:"ems_candidates"`
	VCProbs          Distribution      `json:"vc_probs"`      // final, after modifiers
	VCProbsBase      Distribution      `json:"vc_probs_base"` // before modifiers
	Summary          Summary           `json:"summary"`
	Uncertainty      Uncertainty       `json:"uncertainty"`
	Confidence       float64           `json:"confidence"`
	Warnings         []string          `json:"warnings"`
	VCClass          string            `json:"vc_class"`
	VCClassInt       int               `json:"vc_class_int"`
	VCClassBase      string            `json:"vc_class_base"`
	VCClassBaseInt   int               `json:"vc_class_base_int"`
	ModifiersApplied []AppliedModifier `json:"vc_modifiers_applied"`
}

// Flag values surfaced in Uncertainty.Flags and Candidate.Flags.
const (
	FlagDistributedMapping = "DISTRIBUTED_MAPPING"
	FlagOneToManyMapping   = "ONE_TO_MANY_MAPPING"
	FlagERDDefaulted       = "ERD_DEFAULTED_TO_L"
	FlagSystemMissing      = "SYSTEM_MISSING"
	FlagHeightMissing      = "HEIGHT_MISSING"
	FlagModifierApplied    = "VC_MODIFIER_APPLIED"
	FlagExactOverride      = "EXACT_OVERRIDE"
	FlagFailsafe           = "FAILSAFE"
	FlagTypeNotInVocab     = "EMS_NOT_IN_VOCAB"
)
