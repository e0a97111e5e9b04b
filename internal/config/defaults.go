package config

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func bptr(v bool) *bool       { return &v }

// Default returns the built-in configuration: the EMS vocabulary with IMS
// priors and exceptional ranges, the ductility/code-level mapping, token
// aliases, the ordered type assignment cascade, fallback priors, the
// vulnerability-class modifier set and tuning constants.
func Default() *Config {
	return &Config{
		Vocabulary:     defaultVocabulary(),
		DesignLevels:   defaultDesignLevels(),
		Aliases:        defaultAliases(),
		TypeRules:      defaultTypeRules(),
		FallbackPriors: defaultFallbackPriors(),
		Rubric: Rubric{
			Full:                 0.95,
			MaterialSystemHeight: 0.80,
			MaterialHeight:       0.60,
			MaterialOnly:         0.40,
			Partial:              0.20,
		},
		Overrides: nil,
		Modifiers: defaultModifiers(),
		Tuning: Tuning{
			MaxCumulativeShift:       2.0,
			EntropyPenaltyAlpha:      0.25,
			FailsafeType:             "M4",
			FailsafeConfidence:       0.20,
			InvalidTypeConfidenceCap: 0.30,
			OverrideConfidence:       0.99,
		},
	}
}

func defaultVocabulary() map[string]TypeDef {
	return map[string]TypeDef{
		// Masonry
		"M1": {
			Family: "MASONRY", Label: "Rubble stone / fieldstone masonry",
			Prior:      map[string]float64{"A": 1.000, "B": 0, "C": 0, "D": 0, "E": 0, "F": 0},
			MostLikely: "A", RangeMin: "A", RangeMax: "A",
			Doc: "Uncut fieldstone, no or mud mortar. Most vulnerable masonry type.",
		},
		"M2": {
			Family: "MASONRY", Label: "Adobe / earth brick masonry",
			Prior:      map[string]float64{"A": 0.667, "B": 0.333, "C": 0, "D": 0, "E": 0, "F": 0},
			MostLikely: "A", RangeMin: "A", RangeMax: "B",
			Doc: "Adobe, rammed earth, cob. Most likely A, can reach B.",
		},
		"M3": {
			Family: "MASONRY", Label: "Simple stone masonry",
			Prior:      map[string]float64{"A": 0.333, "B": 0.667, "C": 0, "D": 0, "E": 0, "F": 0},
			MostLikely: "B", RangeMin: "A", RangeMax: "B",
			Doc: "Dressed stone, some corner bonding. Most likely B, can reach A.",
		},
		"M4": {
			Family: "MASONRY", Label: "Massive stone masonry",
			Prior:      map[string]float64{"A": 0, "B": 0.250, "C": 0.500, "D": 0.250, "E": 0, "F": 0},
			MostLikely: "C", RangeMin: "B", RangeMax: "D",
			Doc: "Large cut blocks. Range B-D, most likely C.",
		},
		"M5": {
			Family: "MASONRY", Label: "Manufactured stone units with timber floors",
			Prior:      map[string]float64{"A": 0.250, "B": 0.500, "C": 0.250, "D": 0, "E": 0, "F": 0},
			MostLikely: "B", RangeMin: "A", RangeMax: "C",
			Doc: "Fired-clay brick / concrete block, timber floors. Most likely B.",
		},
		"M6": {
			Family: "MASONRY", Label: "Manufactured stone units with RC floors",
			Prior:      map[string]float64{"A": 0, "B": 0.250, "C": 0.500, "D": 0.250, "E": 0, "F": 0},
			MostLikely: "C", RangeMin: "B", RangeMax: "D",
			Doc: "Brick/block masonry with RC floors. RC floors improve diaphragm.",
		},
		"M7": {
			Family: "MASONRY", Label: "Reinforced or confined masonry with RC floors",
			Prior:      map[string]float64{"A": 0, "B": 0, "C": 0.250, "D": 0.500, "E": 0.250, "F": 0},
			MostLikely: "D", RangeMin: "C", RangeMax: "E",
			Doc: "Steel-reinforced or confined masonry. Range C-E, most likely D.",
		},

		// RC cast-in-situ
		"RC1-L": {
			Family: "RC", Label: "RC moment/braced frame, low ERD",
			Prior:      map[string]float64{"A": 0.133, "B": 0.267, "C": 0.400, "D": 0.200, "E": 0, "F": 0},
			MostLikely: "C", RangeMin: "A", RangeMax: "D",
			Doc: "RC frame without seismic design. Most likely C.",
		},
		"RC1-M": {
			Family: "RC", Label: "RC moment/braced frame, moderate ERD",
			Prior:      map[string]float64{"A": 0, "B": 0.133, "C": 0.267, "D": 0.400, "E": 0.200, "F": 0},
			MostLikely: "D", RangeMin: "B", RangeMax: "E",
			Doc: "RC frame with moderate seismic design. Most likely D.",
		},
		"RC1-H": {
			Family: "RC", Label: "RC moment/braced frame, high ERD",
			Prior:      map[string]float64{"A": 0, "B": 0, "C": 0.133, "D": 0.267, "E": 0.400, "F": 0.200},
			MostLikely: "E", RangeMin: "C", RangeMax: "F",
			Doc: "RC frame with high seismic design. Most likely E.",
		},
		"RC2-L": {
			Family: "RC", Label: "RC shear wall, low ERD",
			Prior:      map[string]float64{"A": 0, "B": 0.250, "C": 0.500, "D": 0.250, "E": 0, "F": 0},
			MostLikely: "C", RangeMin: "B", RangeMax: "D",
			Doc: "RC wall without seismic design. More inherent stiffness than frame.",
		},
		"RC2-M": {
			Family: "RC", Label: "RC shear wall, moderate ERD",
			Prior:      map[string]float64{"A": 0, "B": 0, "C": 0.250, "D": 0.500, "E": 0.250, "F": 0},
			MostLikely: "D", RangeMin: "C", RangeMax: "E",
			Doc: "RC wall with moderate seismic design.",
		},
		"RC2-H": {
			Family: "RC", Label: "RC shear wall, high ERD",
			Prior:      map[string]float64{"A": 0, "B": 0, "C": 0, "D": 0.250, "E": 0.500, "F": 0.250},
			MostLikely: "E", RangeMin: "D", RangeMax: "F",
			Doc: "RC wall with high seismic design.",
		},
		"RC3-L": {
			Family: "RC", Label: "RC dual frame-wall system, low ERD",
			Prior:      map[string]float64{"A": 0, "B": 0.250, "C": 0.500, "D": 0.250, "E": 0, "F": 0},
			MostLikely: "C", RangeMin: "B", RangeMax: "D",
			Doc: "Dual system without seismic design.",
		},
		"RC3-M": {
			Family: "RC", Label: "RC dual frame-wall system, moderate ERD",
			Prior:      map[string]float64{"A": 0, "B": 0, "C": 0.250, "D": 0.500, "E": 0.250, "F": 0},
			MostLikely: "D", RangeMin: "C", RangeMax: "E",
			Doc: "Dual system with moderate seismic design.",
		},
		"RC3-H": {
			Family: "RC", Label: "RC dual frame-wall system, high ERD",
			Prior:      map[string]float64{"A": 0, "B": 0, "C": 0, "D": 0.250, "E": 0.500, "F": 0.250},
			MostLikely: "E", RangeMin: "D", RangeMax: "F",
			Doc: "Dual system with high seismic design.",
		},
		"RC4": {
			Family: "RC", Label: "RC flat slab / waffle slab",
			Prior:      map[string]float64{"A": 0.200, "B": 0.400, "C": 0.267, "D": 0.133, "E": 0, "F": 0},
			MostLikely: "B", RangeMin: "A", RangeMax: "D",
			Doc: "Flat slab, no beams, punch-through risk. Most likely B.",
		},

		// RC precast
		"RC5-L": {
			Family: "RC", Label: "Precast RC frame, low ERD",
			Prior:      map[string]float64{"A": 0.133, "B": 0.267, "C": 0.400, "D": 0.200, "E": 0, "F": 0},
			MostLikely: "C", RangeMin: "A", RangeMax: "D",
			Doc: "Precast frame without seismic design. Connection quality uncertain.",
		},
		"RC5-M": {
			Family: "RC", Label: "Precast RC frame, moderate ERD",
			Prior:      map[string]float64{"A": 0, "B": 0.133, "C": 0.267, "D": 0.400, "E": 0.200, "F": 0},
			MostLikely: "D", RangeMin: "B", RangeMax: "E",
			Doc: "Precast frame with moderate seismic design.",
		},
		"RC6-L": {
			Family: "RC", Label: "Precast RC wall or dual system, low ERD",
			Prior:      map[string]float64{"A": 0, "B": 0.250, "C": 0.500, "D": 0.250, "E": 0, "F": 0},
			MostLikely: "C", RangeMin: "B", RangeMax: "D",
			Doc: "Precast wall/dual without seismic design.",
		},
		"RC6-M": {
			Family: "RC", Label: "Precast RC wall or dual system, moderate ERD",
			Prior:      map[string]float64{"A": 0, "B": 0, "C": 0.250, "D": 0.500, "E": 0.250, "F": 0},
			MostLikely: "D", RangeMin: "C", RangeMax: "E",
			Doc: "Precast wall/dual with moderate seismic design.",
		},

		// Steel
		"S-L": {
			Family: "STEEL", Label: "Steel frame, low ERD / no seismic design",
			Prior:      map[string]float64{"A": 0, "B": 0, "C": 0.200, "D": 0.400, "E": 0.267, "F": 0.133},
			MostLikely: "D", RangeMin: "C", RangeMax: "F",
			Doc: "Steel frame without seismic design.",
		},
		"S-M/H": {
			Family: "STEEL", Label: "Steel frame, moderate or high ERD",
			Prior:      map[string]float64{"A": 0, "B": 0, "C": 0, "D": 0.250, "E": 0.500, "F": 0.250},
			MostLikely: "E", RangeMin: "D", RangeMax: "F",
			Doc: "Steel frame with seismic design. Range D-F.",
		},

		// Timber
		"T1": {
			Family: "TIMBER", Label: "Traditional / heavy timber",
			Prior:      map[string]float64{"A": 0, "B": 0.250, "C": 0.500, "D": 0.250, "E": 0, "F": 0},
			MostLikely: "C", RangeMin: "B", RangeMax: "D",
			Doc: "Heavy wood, wattle and daub, bamboo. Range B-D.",
		},
		"T2-L": {
			Family: "TIMBER", Label: "Light timber frame, low ERD",
			Prior:      map[string]float64{"A": 0, "B": 0.133, "C": 0.267, "D": 0.400, "E": 0.200, "F": 0},
			MostLikely: "D", RangeMin: "B", RangeMax: "E",
			Doc: "Light wood frame without seismic design.",
		},
		"T2-M/H": {
			Family: "TIMBER", Label: "Light timber frame, moderate or high ERD",
			Prior:      map[string]float64{"A": 0, "B": 0, "C": 0, "D": 0.250, "E": 0.500, "F": 0.250},
			MostLikely: "E", RangeMin: "D", RangeMax: "F",
			Doc: "Light wood frame with seismic design. Can reach F.",
		},
	}
}

func defaultDesignLevels() []DesignLevel {
	return []DesignLevel{
		// Combined code level + ductility tokens, most informative
		{CodeLevel: "CDL", Ductility: "DUL", Level: "L", Score: 0.10, Label: "low-code, low-ductility"},
		{CodeLevel: "CDL", Ductility: "DUM", Level: "L", Score: 0.25, Label: "low-code, med-ductility"},
		{CodeLevel: "CDL", Ductility: "DNO", Level: "L", Score: 0.05, Label: "low-code, non-ductile"},
		{CodeLevel: "CDM", Ductility: "DUL", Level: "M", Score: 0.40, Label: "mod-code, low-ductility"},
		{CodeLevel: "CDM", Ductility: "DUM", Level: "M", Score: 0.55, Label: "mod-code, med-ductility"},
		{CodeLevel: "CDM", Ductility: "DNO", Level: "L", Score: 0.20, Label: "mod-code, non-ductile"},
		// Code level only
		{CodeLevel: "CDL", Level: "L", Score: 0.15, Label: "low-code only"},
		{CodeLevel: "CDM", Level: "M", Score: 0.50, Label: "mod-code only"},
		// Standard GEM ductility tokens only
		{Ductility: "DNO", Level: "L", Score: 0.05, Label: "non-ductile (GEM)"},
		{Ductility: "DUC", Level: "H", Score: 0.90, Label: "ductile (GEM)"},
		{Ductility: "DBD", Level: "H", Score: 1.00, Label: "base-isolated (GEM)"},
		{Ductility: "DU99", Level: "L", Score: 0.10, Label: "ductility unknown"},
		// Default
		{Level: "L", Score: 0.10, Label: "no ductility info"},
	}
}

func defaultAliases() map[string]string {
	return map[string]string{
		"ST":   "ST99",  // stone shorthand
		"CL":   "CL99",  // clay unit shorthand
		"UNK":  "MAT99", // unknown material
		"MATO": "MATO",  // other material, kept as-is
	}
}

func defaultTypeRules() []TypeRule {
	return []TypeRule{
		// Family assignment
		{ID: "MAT_RC", Priority: 10,
			If:   RuleConditions{MaterialAny: []string{"CR", "SRC"}},
			Then: RuleAction{Family: "RC"}, ConfidencePenalty: 1.00,
			Doc: "CR (reinforced concrete) and SRC (composite) assign the RC family."},
		{ID: "MAT_RC_UNCERTAIN", Priority: 11,
			If:   RuleConditions{MaterialAny: []string{"C99", "CU"}},
			Then: RuleAction{Family: "RC"}, ConfidencePenalty: 0.75,
			Doc: "Concrete unknown/unreinforced assigns RC with lower confidence."},
		{ID: "MAT_MASONRY", Priority: 10,
			If:   RuleConditions{MaterialAny: []string{"MUR", "MR", "MCF", "M99", "MUN99"}},
			Then: RuleAction{Family: "MASONRY"}, ConfidencePenalty: 1.00,
			Doc: "Standard masonry material tokens."},
		{ID: "MAT_EARTH", Priority: 10,
			If:   RuleConditions{MaterialAny: []string{"EU", "ER", "E99", "ET99", "ETR", "ETC", "ETO"}},
			Then: RuleAction{Family: "MASONRY"}, ConfidencePenalty: 0.85,
			Doc: "Earth materials (rammed earth, cob) map into the masonry family."},
		{ID: "MAT_STEEL", Priority: 10,
			If:   RuleConditions{MaterialAny: []string{"S", "S99", "SL", "SR", "SO", "ME", "ME99", "MEIR", "MEO"}},
			Then: RuleAction{Family: "STEEL"}, ConfidencePenalty: 1.00,
			Doc: "Steel and metal tokens."},
		{ID: "MAT_TIMBER", Priority: 10,
			If:   RuleConditions{MaterialAny: []string{"W", "W99", "WHE", "WLI", "WS", "WWD", "WBB", "WO"}},
			Then: RuleAction{Family: "TIMBER"}, ConfidencePenalty: 1.00,
			Doc: "Wood material tokens."},
		{ID: "MAT_OTHER", Priority: 12,
			If:   RuleConditions{MaterialAny: []string{"MATO"}},
			Then: RuleAction{Family: "RC"}, ConfidencePenalty: 0.50,
			Doc: "Other material, RC family as conservative fallback."},

		// Masonry specific types
		{ID: "MAS_REINF_OR_CONFINED", Priority: 15,
			If:   RuleConditions{Family: "MASONRY", MaterialAny: []string{"MR", "MCF"}},
			Then: RuleAction{Type: "M7"}, ConfidencePenalty: 0.95,
			Doc: "Reinforced (MR) or confined (MCF) masonry."},
		{ID: "MAS_ADOBE", Priority: 16,
			If:   RuleConditions{Family: "MASONRY", MaterialL2Any: []string{"ADO"}},
			Then: RuleAction{Type: "M2"}, ConfidencePenalty: 0.95,
			Doc: "Adobe blocks."},
		{ID: "MAS_EARTH", Priority: 17,
			If:   RuleConditions{Family: "MASONRY", MaterialAny: []string{"EU", "ER", "E99", "ET99", "ETR", "ETC", "ETO"}},
			Then: RuleAction{Fallback: "EARTH_MASONRY"}, ConfidencePenalty: 0.80,
			Doc: "Earth materials spread over M2/M5."},
		{ID: "MAS_RUBBLE", Priority: 20,
			If:   RuleConditions{Family: "MASONRY", MaterialL2Any: []string{"STRUB"}},
			Then: RuleAction{Type: "M1"}, ConfidencePenalty: 0.90,
			Doc: "Rubble/fieldstone."},
		{ID: "MAS_DRESSED_STONE", Priority: 21,
			If:   RuleConditions{Family: "MASONRY", MaterialL2Any: []string{"STDRE"}},
			Then: RuleAction{Fallback: "STONE_DRESSED"}, ConfidencePenalty: 0.85,
			Doc: "Dressed stone spread over M3/M4."},
		{ID: "MAS_STONE_UNKNOWN", Priority: 22,
			If: RuleConditions{Family: "MASONRY",
				MaterialL2Any: []string{"ST99", "SP99", "SPO", "SPLI", "SPSA", "SPTU", "SPSL", "SPGR", "SPBA"}},
			Then: RuleAction{Fallback: "STONE_UNKNOWN"}, ConfidencePenalty: 0.80,
			Doc: "Unknown stone type spread over M1/M3/M4."},
		{ID: "MAS_BRICK", Priority: 23,
			If:   RuleConditions{Family: "MASONRY", MaterialL2Any: []string{"CL99", "CLBRS", "CLBRH", "CLBLH"}},
			Then: RuleAction{Fallback: "BRICK_MASONRY"}, ConfidencePenalty: 0.85,
			Doc: "Fired-clay brick/block spread over M5/M6."},
		{ID: "MAS_CONCRETE_BLOCK", Priority: 24,
			If:   RuleConditions{Family: "MASONRY", MaterialL2Any: []string{"CB99", "CBS", "CBH"}},
			Then: RuleAction{Fallback: "CONCRETE_BLOCK_MASONRY"}, ConfidencePenalty: 0.80,
			Doc: "Concrete block masonry spread over M5/M6/M7."},

		// RC system rules
		{ID: "RC_PRECAST_FRAME", Priority: 28,
			If: RuleConditions{Family: "RC", MaterialL2Any: []string{"PC", "PCPS"},
				SystemAny: []string{"LFM", "LFINF", "LFBR", "LPB", "LDUAL", "LH", "L99"}},
			Then: RuleAction{Template: "RC5-{erd}"}, ConfidencePenalty: 0.88,
			Doc: "Precast RC with frame system."},
		{ID: "RC_PRECAST_WALL", Priority: 29,
			If: RuleConditions{Family: "RC", MaterialL2Any: []string{"PC", "PCPS"},
				SystemAny: []string{"LWAL", "LFLS", "LFLSINF"}},
			Then: RuleAction{Template: "RC6-{erd}"}, ConfidencePenalty: 0.88,
			Doc: "Precast RC with wall/slab system."},
		{ID: "RC_FLATSLAB", Priority: 30,
			If:   RuleConditions{Family: "RC", SystemAny: []string{"LFLS", "LFLSINF"}},
			Then: RuleAction{Type: "RC4"}, ConfidencePenalty: 0.90,
			Doc: "Flat slab / waffle slab."},
		{ID: "RC_FRAME", Priority: 31,
			If:   RuleConditions{Family: "RC", SystemAny: []string{"LFM", "LFINF", "LFBR", "LPB"}},
			Then: RuleAction{Template: "RC1-{erd}"}, ConfidencePenalty: 0.95,
			Doc: "RC frame systems: moment, infilled, braced, post-and-beam."},
		{ID: "RC_WALL", Priority: 32,
			If:   RuleConditions{Family: "RC", SystemAny: []string{"LWAL"}},
			Then: RuleAction{Template: "RC2-{erd}"}, ConfidencePenalty: 0.95,
			Doc: "RC wall system."},
		{ID: "RC_DUAL", Priority: 33,
			If:   RuleConditions{Family: "RC", SystemAny: []string{"LDUAL"}},
			Then: RuleAction{Template: "RC3-{erd}"}, ConfidencePenalty: 0.95,
			Doc: "RC dual frame-wall system."},
		{ID: "RC_NO_SYSTEM", Priority: 70,
			If:   RuleConditions{Family: "RC", MissingAny: []string{"system"}},
			Then: RuleAction{Fallback: "RC_missing_system"}, ConfidencePenalty: 0.75,
			Doc: "RC material known but system unknown."},
		{ID: "RC_UNCERTAIN_MATERIAL", Priority: 75,
			If:   RuleConditions{Family: "RC", MaterialAny: []string{"C99", "CU", "MATO"}},
			Then: RuleAction{Fallback: "RC_uncertain_material"}, ConfidencePenalty: 0.65,
			Doc: "Concrete with unknown reinforcement."},

		// Steel rules
		{ID: "STEEL_LIGHT", Priority: 50,
			If:   RuleConditions{Family: "STEEL", MaterialAny: []string{"SL"}},
			Then: RuleAction{Fallback: "STEEL_light"}, ConfidencePenalty: 0.80,
			Doc: "Cold-formed/light steel, heavier weight on S-L."},
		{ID: "STEEL_HEAVY", Priority: 51,
			If:   RuleConditions{Family: "STEEL", MaterialAny: []string{"SR"}},
			Then: RuleAction{Fallback: "STEEL_heavy"}, ConfidencePenalty: 0.85,
			Doc: "Hot-rolled steel, heavier weight on S-M/H."},
		{ID: "STEEL_DEFAULT", Priority: 80,
			If:   RuleConditions{Family: "STEEL"},
			Then: RuleAction{Fallback: "STEEL_default"}, ConfidencePenalty: 0.70,
			Doc: "Steel family fallback when member type unknown."},

		// Timber rules
		{ID: "TIMBER_WATTLE", Priority: 60,
			If:   RuleConditions{Family: "TIMBER", MaterialAny: []string{"WWD", "WBB"}},
			Then: RuleAction{Fallback: "TIMBER_traditional"}, ConfidencePenalty: 0.80,
			Doc: "Wattle-and-daub / bamboo."},
		{ID: "TIMBER_LIGHT", Priority: 61,
			If:   RuleConditions{Family: "TIMBER", MaterialAny: []string{"WLI"}},
			Then: RuleAction{Fallback: "TIMBER_modern"}, ConfidencePenalty: 0.85,
			Doc: "Light wood members."},
		{ID: "TIMBER_HEAVY", Priority: 62,
			If:   RuleConditions{Family: "TIMBER", MaterialAny: []string{"WHE", "WS"}},
			Then: RuleAction{Fallback: "TIMBER_traditional"}, ConfidencePenalty: 0.85,
			Doc: "Heavy/solid wood."},
		{ID: "TIMBER_DEFAULT", Priority: 81,
			If:   RuleConditions{Family: "TIMBER"},
			Then: RuleAction{Fallback: "TIMBER_default"}, ConfidencePenalty: 0.70,
			Doc: "Timber family fallback."},

		// Masonry fallback
		{ID: "MAS_DEFAULT", Priority: 85,
			If:   RuleConditions{Family: "MASONRY"},
			Then: RuleAction{Fallback: "MASONRY_default"}, ConfidencePenalty: 0.65,
			Doc: "Masonry fallback when unit type and reinforcement are unknown."},

		// Global failsafe
		{ID: "FAILSAFE", Priority: 999,
			If:   RuleConditions{},
			Then: RuleAction{Type: "M4"}, ConfidencePenalty: 0.20,
			Doc: "No rule matched; conservative stone masonry."},
	}
}

func defaultFallbackPriors() map[string][]TypeWeight {
	return map[string][]TypeWeight{
		"MASONRY_default":        {{"M3", 0.35}, {"M4", 0.35}, {"M5", 0.30}},
		"STONE_UNKNOWN":          {{"M1", 0.40}, {"M3", 0.40}, {"M4", 0.20}},
		"STONE_DRESSED":          {{"M3", 0.70}, {"M4", 0.30}},
		"BRICK_MASONRY":          {{"M5", 0.60}, {"M6", 0.40}},
		"CONCRETE_BLOCK_MASONRY": {{"M5", 0.55}, {"M6", 0.30}, {"M7", 0.15}},
		"EARTH_MASONRY":          {{"M2", 0.80}, {"M5", 0.20}},
		"RC_missing_system":      {{"RC1-L", 0.45}, {"RC2-L", 0.35}, {"RC3-L", 0.20}},
		"RC_uncertain_material":  {{"RC1-L", 0.40}, {"RC2-L", 0.35}, {"RC3-L", 0.25}},
		"STEEL_default":          {{"S-L", 0.40}, {"S-M/H", 0.60}},
		"STEEL_light":            {{"S-L", 0.70}, {"S-M/H", 0.30}},
		"STEEL_heavy":            {{"S-L", 0.30}, {"S-M/H", 0.70}},
		"TIMBER_default":         {{"T1", 0.10}, {"T2-L", 0.40}, {"T2-M/H", 0.50}},
		"TIMBER_traditional":     {{"T1", 0.60}, {"T2-L", 0.25}, {"T2-M/H", 0.15}},
		"TIMBER_modern":          {{"T2-L", 0.45}, {"T2-M/H", 0.55}},
	}
}

func defaultModifiers() []Modifier {
	return []Modifier{
		// Structural irregularity
		{ID: "IRREG_SOFT_STOREY",
			Doc:   "Soft storey (SOS), primary vertical irregularity concentrating inter-storey drift.",
			If:    ModifierConditions{VertTypesAny: []string{"SOS"}},
			Shift: +1.00, ConfidencePenalty: 0.88},
		{ID: "IRREG_SHORT_COLUMN",
			Doc:   "Short column (SHC), brittle shear failure mode.",
			If:    ModifierConditions{VertTypesAny: []string{"SHC"}},
			Shift: +0.75, ConfidencePenalty: 0.88},
		{ID: "IRREG_CRIPPLE_WALL",
			Doc:   "Cripple wall (CRW), low lateral stiffness at ground level.",
			If:    ModifierConditions{VertTypesAny: []string{"CRW"}},
			Shift: +0.75, ConfidencePenalty: 0.88},
		{ID: "IRREG_LARGE_OVERHANG",
			Doc:   "Large overhang / change in vertical structure (CHV).",
			If:    ModifierConditions{VertTypesAny: []string{"CHV"}},
			Shift: +0.50, ConfidencePenalty: 0.90},
		{ID: "IRREG_POUNDING",
			Doc:   "Pounding potential (POP), floor-level mismatch with adjacent buildings.",
			If:    ModifierConditions{VertTypesAny: []string{"POP"}},
			Shift: +0.50, ConfidencePenalty: 0.90},
		{ID: "IRREG_SETBACK",
			Doc:   "Setback (SET), discontinuity in load path at setback level.",
			If:    ModifierConditions{VertTypesAny: []string{"SET"}},
			Shift: +0.25, ConfidencePenalty: 0.93},
		{ID: "IRREG_TORSION",
			Doc:   "Torsion eccentricity in plan (TOR).",
			If:    ModifierConditions{PlanTypesAny: []string{"TOR"}},
			Shift: +0.50, ConfidencePenalty: 0.90},
		{ID: "IRREG_REENTRANT_CORNER",
			Doc:   "Re-entrant corner (REC), stress concentration at corner.",
			If:    ModifierConditions{PlanTypesAny: []string{"REC"}},
			Shift: +0.25, ConfidencePenalty: 0.93},
		{ID: "IRREG_IRIR_GENERIC",
			Doc: "Building flagged irregular (IRIR) with no specific type known. " +
				"Fires only when both specific-type lists are empty so it never stacks with the specific modifiers.",
			If: ModifierConditions{IrregularityL1Is: "IRIR",
				PlanTypesAny: []string{}, VertTypesAny: []string{}},
			Shift: +0.25, ConfidencePenalty: 0.93},

		// Plan shape
		{ID: "PLAN_COMPLEX_SHAPE",
			Doc: "Non-rectangular plan shape, torsional eccentricity and stress concentrations.",
			If: ModifierConditions{PlanShapeIn: []string{"PLFL", "PLFE", "PLFH", "PLFS", "PLFT", "PLFU",
				"PLFX", "PLFY", "PLFI", "PLFD", "PLFDO", "PLFP", "PLFPO", "PLFC", "PLFCO"}},
			Shift: +0.25, ConfidencePenalty: 0.93},
		{ID: "PLAN_WITH_OPENING",
			Doc:   "Square or rectangular plan with interior opening, partial diaphragm.",
			If:    ModifierConditions{PlanShapeIn: []string{"PLFSQO", "PLFRO"}},
			Shift: +0.25, ConfidencePenalty: 0.93},
		{ID: "PLAN_REGULAR_BONUS",
			Doc:   "Simple square or rectangular plan, no geometric penalty.",
			If:    ModifierConditions{PlanShapeIn: []string{"PLFSQ", "PLFR"}},
			Shift: -0.25, ConfidencePenalty: 1.00},

		// Age / construction era. Brackets are mutually exclusive via the year
		// conditions; 1990-1999 is the baseline with no rule.
		{ID: "AGE_PRE1920",
			Doc:   "Built before 1920, pre-any-seismic-consideration era.",
			If:    ModifierConditions{YearKnown: bptr(true), YearBefore: iptr(1920)},
			Shift: +1.25, ConfidencePenalty: 0.85, MaxContribution: fptr(1.25)},
		{ID: "AGE_1920_1945",
			Doc:   "1920-1944: very early seismic codes, mostly unreinforced or poorly reinforced.",
			If:    ModifierConditions{YearKnown: bptr(true), YearAtLeast: iptr(1920), YearBefore: iptr(1945)},
			Shift: +0.75, ConfidencePenalty: 0.88, MaxContribution: fptr(0.75)},
		{ID: "AGE_1945_1970",
			Doc:   "1945-1969: post-war reconstruction, codes developing but inconsistently applied.",
			If:    ModifierConditions{YearKnown: bptr(true), YearAtLeast: iptr(1945), YearBefore: iptr(1970)},
			Shift: +0.50, ConfidencePenalty: 0.90, MaxContribution: fptr(0.50)},
		{ID: "AGE_1970_1990",
			Doc:   "1970-1989: modern codes emerging, variable enforcement.",
			If:    ModifierConditions{YearKnown: bptr(true), YearAtLeast: iptr(1970), YearBefore: iptr(1990)},
			Shift: +0.25, ConfidencePenalty: 0.92, MaxContribution: fptr(0.25)},
		{ID: "AGE_POST2000",
			Doc:   "Built 2000 or later, post-2000 codes generally better enforced.",
			If:    ModifierConditions{YearKnown: bptr(true), YearAtLeast: iptr(2000)},
			Shift: -0.25, ConfidencePenalty: 1.00, MaxContribution: fptr(0.25)},
		{ID: "AGE_POST2010_DUCTILE",
			Doc: "Built 2010+ with confirmed ductile detailing, strongest combined evidence of modern design.",
			If: ModifierConditions{YearKnown: bptr(true), YearAtLeast: iptr(2010),
				DuctilityIn: []string{"DUC", "DBD"}},
			Shift: -0.75, ConfidencePenalty: 1.00, MaxContribution: fptr(0.75)},

		// Ductility / ERD
		{ID: "DUCTILITY_DNO",
			Doc:   "Confirmed non-ductile structural system, brittle failure expected.",
			If:    ModifierConditions{DuctilityIn: []string{"DNO"}},
			Shift: +0.50, ConfidencePenalty: 0.90},
		{ID: "DUCTILITY_DUC",
			Doc:   "Confirmed ductile design, capacity design principles applied.",
			If:    ModifierConditions{DuctilityIn: []string{"DUC"}},
			Shift: -0.75, ConfidencePenalty: 1.00},
		{ID: "DUCTILITY_DBD",
			Doc:   "Base isolation or energy dissipation devices, major vulnerability reduction.",
			If:    ModifierConditions{DuctilityIn: []string{"DBD"}},
			Shift: -1.25, ConfidencePenalty: 1.00},
		{ID: "HIGH_RISE_UNKNOWN_DUCTILITY",
			Doc: "High-rise (8+ storeys) with no ductility information, precautionary.",
			If: ModifierConditions{HeightBinIs: "H", DuctilityIn: []string{"DU99"},
				ERDScoreBelow: fptr(0.30)},
			Shift: +0.50, ConfidencePenalty: 0.88},

		// Roof system
		{ID: "ROOF_EARTHEN_ON_MASONRY",
			Doc:   "Earthen roof covering (RMT9) on masonry, very heavy mass on weak walls.",
			If:    ModifierConditions{RoofCoveringIn: []string{"RMT9"}, FamilyIn: []string{"MASONRY"}},
			Shift: +1.50, ConfidencePenalty: 0.88},
		{ID: "ROOF_EARTHEN_ON_TIMBER",
			Doc:   "Earthen roof (RMT9) on timber frame, mass mismatch.",
			If:    ModifierConditions{RoofCoveringIn: []string{"RMT9"}, FamilyIn: []string{"TIMBER"}},
			Shift: +1.00, ConfidencePenalty: 0.88},
		{ID: "ROOF_STONE_SLAB_ON_MASONRY",
			Doc:   "Stone slab roof (RMT5) on masonry, extremely heavy mass.",
			If:    ModifierConditions{RoofCoveringIn: []string{"RMT5"}, FamilyIn: []string{"MASONRY"}},
			Shift: +1.00, ConfidencePenalty: 0.88},
		{ID: "ROOF_MASONRY_VAULT",
			Doc:   "Vaulted or arched masonry roof, lateral thrust on walls.",
			If:    ModifierConditions{RoofSystemIn: []string{"RM1", "RM2"}, FamilyIn: []string{"MASONRY"}},
			Shift: +0.75, ConfidencePenalty: 0.90},
		{ID: "ROOF_HEAVY_WOOD_ON_MASONRY",
			Doc:   "Heavy wooden roof (RWO2) on masonry.",
			If:    ModifierConditions{RoofSystemIn: []string{"RWO2"}, FamilyIn: []string{"MASONRY"}},
			Shift: +0.50, ConfidencePenalty: 0.90},
		{ID: "ROOF_THATCH_OR_BAMBOO",
			Doc:   "Thatch/bamboo/straw roof (RWO5), fragile with poor connections.",
			If:    ModifierConditions{RoofSystemIn: []string{"RWO5"}},
			Shift: +0.50, ConfidencePenalty: 0.90},
		{ID: "ROOF_LIGHT_BENEFIT",
			Doc: "Light roof covering on light wood system, reduces inertial load.",
			If: ModifierConditions{RoofCoveringIn: []string{"RMT6", "RMT7"},
				RoofSystemIn: []string{"RWO1", "RWO4"}},
			Shift: -0.25, ConfidencePenalty: 1.00},
		{ID: "ROOF_NO_TIEDOWN",
			Doc:   "Roof-wall diaphragm connection not provided (RWCN).",
			If:    ModifierConditions{RoofConnIn: []string{"RWCN"}},
			Shift: +0.25, ConfidencePenalty: 0.92},
		{ID: "ROOF_TIEDOWN_PRESENT",
			Doc:   "Roof tie-down provided (RTDP), anchors roof to wall structure.",
			If:    ModifierConditions{RoofConnIn: []string{"RTDP"}},
			Shift: -0.25, ConfidencePenalty: 1.00},

		// Floor diaphragm
		{ID: "FLOOR_WOOD_ON_MASONRY",
			Doc:   "Wood floor diaphragm in masonry building, flexible diaphragm fails to redistribute lateral loads.",
			If:    ModifierConditions{FloorMaterialIn: []string{"FW"}, FamilyIn: []string{"MASONRY"}},
			Shift: +0.75, ConfidencePenalty: 0.90},
		{ID: "FLOOR_EARTHEN",
			Doc:   "Earthen floor, flexible, heavy, poor lateral load distribution.",
			If:    ModifierConditions{FloorMaterialIn: []string{"FE"}},
			Shift: +0.50, ConfidencePenalty: 0.90},
		{ID: "FLOOR_PRECAST_NO_TOPPING",
			Doc:   "Precast concrete floor without RC topping (FC4), connection quality uncertain.",
			If:    ModifierConditions{FloorMaterialIn: []string{"FC4"}},
			Shift: +0.25, ConfidencePenalty: 0.92},
		{ID: "FLOOR_NOT_CONNECTED",
			Doc:   "Floor-wall diaphragm connection not provided (FWCN).",
			If:    ModifierConditions{FloorConnIs: "FWCN"},
			Shift: +0.50, ConfidencePenalty: 0.88},
		{ID: "FLOOR_WELL_CONNECTED",
			Doc:   "Floor-wall diaphragm connection present (FWCP), good lateral load transfer.",
			If:    ModifierConditions{FloorConnIs: "FWCP"},
			Shift: -0.25, ConfidencePenalty: 1.00},
		{ID: "FLOOR_RC_RIGID",
			Doc:   "Rigid cast-in-place RC diaphragm (FC1/FC2), distributes loads effectively.",
			If:    ModifierConditions{FloorMaterialIn: []string{"FC1", "FC2"}},
			Shift: -0.25, ConfidencePenalty: 1.00},

		// Masonry material quality
		{ID: "MORTAR_NONE",
			Doc:   "No mortar (MON), dry-stacked masonry with zero tensile bond.",
			If:    ModifierConditions{MaterialL3Any: []string{"MON"}},
			Shift: +0.75, ConfidencePenalty: 0.90},
		{ID: "MORTAR_MUD",
			Doc:   "Mud mortar (MOM), dissolves and weakens under cyclic loading.",
			If:    ModifierConditions{MaterialL3Any: []string{"MOM"}},
			Shift: +0.50, ConfidencePenalty: 0.90},
		{ID: "MORTAR_CEMENT",
			Doc:   "Cement or cement-lime mortar, good bond strength.",
			If:    ModifierConditions{MaterialL3Any: []string{"MOC", "MOCL"}},
			Shift: -0.25, ConfidencePenalty: 1.00},
		{ID: "MASONRY_REINF_RC_BANDS",
			Doc:   "RC tie/bond beams (RCB) in masonry, prevents storey collapse.",
			If:    ModifierConditions{MaterialL2Any: []string{"RCB"}},
			Shift: -0.75, ConfidencePenalty: 1.00},
		{ID: "MASONRY_REINF_STEEL",
			Doc:   "Steel reinforcement (RS) in masonry.",
			If:    ModifierConditions{MaterialL2Any: []string{"RS"}},
			Shift: -0.50, ConfidencePenalty: 1.00},
		{ID: "MASONRY_REINF_BAMBOO",
			Doc:   "Bamboo reinforcement (RB), limited seismic improvement.",
			If:    ModifierConditions{MaterialL2Any: []string{"RB"}},
			Shift: -0.25, ConfidencePenalty: 1.00},

		// Building position (pounding)
		{ID: "POSITION_CORNER",
			Doc:   "Corner building adjoining on three sides (BP3), pounding from two directions.",
			If:    ModifierConditions{PositionIn: []string{"BP3"}},
			Shift: +0.50, ConfidencePenalty: 0.92},
		{ID: "POSITION_END_ROW",
			Doc:   "End-of-row building adjoining on one side (BP1).",
			If:    ModifierConditions{PositionIn: []string{"BP1"}},
			Shift: +0.25, ConfidencePenalty: 0.93},
		{ID: "POSITION_DETACHED",
			Doc:   "Detached building (BPD), no pounding risk.",
			If:    ModifierConditions{PositionIn: []string{"BPD"}},
			Shift: -0.25, ConfidencePenalty: 1.00},

		// Occupancy
		{ID: "OCC_CRITICAL_FACILITY",
			Doc:   "Hospital/clinic (COM4) or emergency government (GOV2), conservative shift for critical function.",
			If:    ModifierConditions{OccupancyDetailIn: []string{"COM4", "GOV2"}},
			Shift: +0.50, ConfidencePenalty: 0.95},
		{ID: "OCC_SCHOOL",
			Doc:   "School or university occupancy, high daytime occupancy.",
			If:    ModifierConditions{OccupancyDetailIn: []string{"EDU2", "EDU3", "EDU4"}},
			Shift: +0.50, ConfidencePenalty: 0.95},
		{ID: "OCC_LARGE_ASSEMBLY",
			Doc:   "Arena or cinema/concert hall, high peak occupancy events.",
			If:    ModifierConditions{OccupancyDetailIn: []string{"ASS2", "ASS3"}},
			Shift: +0.25, ConfidencePenalty: 0.95},
		{ID: "OCC_INFORMAL_HOUSING",
			Doc:   "Informal housing (RES6), typically non-engineered and self-built.",
			If:    ModifierConditions{OccupancyDetailIn: []string{"RES6"}},
			Shift: +0.50, ConfidencePenalty: 0.90},

		// Foundation
		{ID: "FOUND_DEEP_NO_LATERAL",
			Doc:   "Deep foundation without lateral capacity (FOSDN).",
			If:    ModifierConditions{FoundationIn: []string{"FOSDN"}},
			Shift: +0.50, ConfidencePenalty: 0.90},
		{ID: "FOUND_SHALLOW_NO_LATERAL",
			Doc:   "Shallow foundation without lateral capacity (FOSN).",
			If:    ModifierConditions{FoundationIn: []string{"FOSN"}},
			Shift: +0.25, ConfidencePenalty: 0.92},
		{ID: "FOUND_SHALLOW_WITH_LATERAL",
			Doc:   "Shallow foundation with lateral capacity (FOSSL), baseline good.",
			If:    ModifierConditions{FoundationIn: []string{"FOSSL"}},
			Shift: -0.25, ConfidencePenalty: 1.00},

		// Exterior walls / infill
		{ID: "INFILL_MASONRY_ON_RC",
			Doc:   "Masonry infill walls (EWMA) in RC frame, short column / soft storey potential.",
			If:    ModifierConditions{ExteriorWallAny: []string{"EWMA"}, FamilyIn: []string{"RC"}},
			Shift: +0.25, ConfidencePenalty: 0.92},
		{ID: "INFILL_MASONRY_FROM_LFINF",
			Doc: "Infilled RC frame (LFINF) with masonry infill explicitly coded.",
			If: ModifierConditions{SystemAny: []string{"LFINF"},
				InfillAny: []string{"MUR", "ADO", "CBH", "CBS", "CLBRS", "CLBRH"},
				FamilyIn:  []string{"RC"}},
			Shift: +0.25, ConfidencePenalty: 0.92},
		{ID: "INFILL_EARTHEN_ON_RC",
			Doc:   "Earthen infill (EWE) in RC frame, very weak with large stiffness discontinuity.",
			If:    ModifierConditions{ExteriorWallAny: []string{"EWE"}, FamilyIn: []string{"RC"}},
			Shift: +0.50, ConfidencePenalty: 0.90},
		{ID: "WALL_CONCRETE_ON_RC",
			Doc:   "Concrete exterior walls (EWC) on RC frame, adds lateral stiffness.",
			If:    ModifierConditions{ExteriorWallAny: []string{"EWC"}, FamilyIn: []string{"RC"}},
			Shift: -0.25, ConfidencePenalty: 1.00},

		// Precast RC specific
		{ID: "PRECAST_NO_DUCTILITY_INFO",
			Doc: "Precast RC without ductility information, connection quality historically variable.",
			If: ModifierConditions{TypeIn: []string{"RC5-L", "RC5-M", "RC6-L", "RC6-M"},
				ERDScoreBelow: fptr(0.30)},
			Shift: +0.50, ConfidencePenalty: 0.88},
	}
}
