package parsing

import "strings"

// Token vocabularies from the GEM v2.0 taxonomy tables. Sets cover the token
// classes the parser routes on; prefix lists cover the open-ended roof and
// floor token families.

var materialL1Tokens = newTokenSet(
	"MAT99", "C99", "CU", "CR", "SRC",
	"S", "S99", "SL", "SR", "SO",
	"ME", "ME99", "MEIR", "MEO",
	"M99", "MUR", "MCF", "MR", "MO",
	"E99", "EU", "ER",
	"W", "W99", "WHE", "WLI", "WS", "WWD", "WBB", "WO",
	"MATO",
)

var concreteTechTokens = newTokenSet("CT99", "CIP", "PC", "CIPPS", "PCPS")

var masonryUnitTokens = newTokenSet(
	"MUN99", "ADO",
	"ST99", "STRUB", "STDRE",
	"CL99", "CLBRS", "CLBRH", "CLBLH",
	"CB99", "CBS", "CBH",
	"MO",
)

var masonryReinfTokens = newTokenSet("MR99", "RS", "RW", "RB", "RCM", "RCB")

var mortarTokens = newTokenSet("MO99", "MON", "MOM", "MOL", "MOC", "MOCL")

var stoneTypeTokens = newTokenSet("SP99", "SPLI", "SPSA", "SPTU", "SPSL", "SPGR", "SPBA", "SPO")

var systemL1Tokens = newTokenSet(
	"L99", "LN", "LFM", "LFINF", "LFBR", "LPB",
	"LWAL", "LDUAL", "LFLS", "LFLSINF", "LH", "LO",
)

var codeLevelTokens = newTokenSet("CDL", "CDM", "CDH")

var ductilityTokens = newTokenSet("DUL", "DUM", "DNO", "DUC", "DBD", "DU99")

var irregL1Tokens = newTokenSet("IR99", "IRRE", "IRIR")

var irregL3Tokens = newTokenSet(
	"IRN", "TOR", "REC", "IRHO", "SOS", "CRW", "SHC", "POP", "SET", "CHV", "IRVO",
)

var irregPlanTokens = newTokenSet("TOR", "REC", "IRHO")

var irregVertTokens = newTokenSet("SOS", "CRW", "SHC", "POP", "SET", "CHV", "IRVO")

var occupancyL1Tokens = newTokenSet(
	"OC99", "RES", "COM", "MIX", "IND", "AGR", "ASS", "GOV", "EDU", "OCO",
)

var positionTokens = newTokenSet("BP99", "BPD", "BP1", "BP2", "BP3")

var planShapeTokens = newTokenSet(
	"PLF99", "PLFSQ", "PLFSQO", "PLFR", "PLFRO", "PLFL", "PLFC", "PLFCO",
	"PLFD", "PLFDO", "PLFP", "PLFPO", "PLFE", "PLFH", "PLFS", "PLFT",
	"PLFU", "PLFX", "PLFY", "PLFI",
)

var exteriorWallTokens = newTokenSet(
	"EW99", "EWC", "EWG", "EWE", "EWMA", "EWME", "EWV", "EWW", "EWSL", "EWPL", "EWCB", "EWO",
)

var roofShapeTokens = newTokenSet(
	"RSH99", "RSH1", "RSH2", "RSH3", "RSH4", "RSH5", "RSH6", "RSH7", "RSH8", "RSH9", "RSHO",
)

var roofCoveringTokens = newTokenSet(
	"RMT99", "RMN", "RMT1", "RMT2", "RMT3", "RMT4", "RMT5", "RMT6",
	"RMT7", "RMT8", "RMT9", "RMT10", "RMT11", "RMTO",
)

var roofSystemPrefixes = []string{"RM", "RE", "RC", "RME", "RWO", "RFA", "RO", "R99"}

var floorPrefixes = []string{"FM", "FE", "FC", "FME", "FW", "FO", "FN", "F99"}

var floorConnTokens = newTokenSet("FWC99", "FWCN", "FWCP")

var roofConnTokens = newTokenSet("RWC99", "RWCN", "RWCP", "RTD99", "RTDN", "RTDP")

var foundationTokens = newTokenSet("FOS99", "FOSSL", "FOSN", "FOSDL", "FOSDN", "FOSO")

var heightKeys = newTokenSet("H", "HBET", "HEX", "HAPP")

var yearKeys = newTokenSet("YEX", "YBET", "YPRE", "YAPP", "Y99")

type tokenSet map[string]struct{}

func newTokenSet(tokens ...string) tokenSet {
	s := make(tokenSet, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

func (s tokenSet) has(tok string) bool {
	_, ok := s[tok]
	return ok
}

func hasPrefixAny(tok string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(tok, p) {
			return true
		}
	}
	return false
}
