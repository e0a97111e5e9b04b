// Package parsing turns GEM v2.0 taxonomy strings into structured feature
// records. A taxonomy string is a sequence of slash-separated blocks, each
// holding plus-separated tokens; blocks are routed by their head token.
package parsing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/gem-translator/internal/config"
	"github.com/jonathan/gem-translator/internal/types"
)

var (
	infillBlockRe  = regexp.MustCompile(`^(LFINF|LFLSINF)\(([^)]+)\)(.*)$`)
	numericRangeRe = regexp.MustCompile(`^(\d+)[-–](\d+)`)
	numericPlusRe  = regexp.MustCompile(`^(\d+)\+`)
)

// Parser parses taxonomy strings. Safe for concurrent use.
type Parser struct {
	cfg *config.Config

	// occupancy L1 prefixes, longest first, so L2 tokens like COM4
	// resolve to their most specific parent
	occPrefixes []string
}

// New returns a Parser using the aliases and design-level mapping of cfg.
func New(cfg *config.Config) *Parser {
	prefixes := make([]string, 0, len(occupancyL1Tokens))
	for tok := range occupancyL1Tokens {
		prefixes = append(prefixes, tok)
	}
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i]) != len(prefixes[j]) {
			return len(prefixes[i]) > len(prefixes[j])
		}
		return prefixes[i] < prefixes[j]
	})
	return &Parser{cfg: cfg, occPrefixes: prefixes}
}

// Parse splits the input into blocks and routes each block to the matching
// attribute. Unrecognized tokens are skipped; Parse never fails.
func (p *Parser) Parse(input string) *types.FeatureRecord {
	rec := &types.FeatureRecord{
		MaterialL2:            []string{},
		MaterialL3:            []string{},
		MaterialAll:           []string{},
		SystemL2:              []string{},
		InfillMaterial:        []string{},
		Directions:            []string{},
		IrregularityPlanTypes: []string{},
		IrregularityVertTypes: []string{},
		ExteriorWalls:         []string{},
		RoofConnections:       []string{},
		RawBlocks:             []string{},
	}

	for _, block := range strings.Split(strings.TrimSpace(input), "/") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		rec.RawBlocks = append(rec.RawBlocks, block)
		p.parseBlock(block, rec)
	}

	dl := p.cfg.ResolveDesignLevel(rec.CodeLevel, rec.DuctilityToken)
	rec.ERD = dl.Level
	rec.ERDScore = dl.Score

	rec.HeightBin = heightBin(rec.HeightStories)
	return rec
}

func (p *Parser) parseBlock(block string, rec *types.FeatureRecord) {
	// Infilled frame with parenthetical infill: LFINF(MUR+CBH)+CDL+DUL
	if m := infillBlockRe.FindStringSubmatch(block); m != nil {
		if rec.System == "" {
			rec.System = m[1]
		}
		for _, raw := range strings.Split(m[2], "+") {
			tok := p.alias(strings.TrimSpace(raw))
			if tok != "" {
				rec.InfillMaterial = append(rec.InfillMaterial, tok)
			}
		}
		if rest := strings.TrimLeft(m[3], "+"); rest != "" {
			p.parseLevelTokens(strings.Split(rest, "+"), rec)
		}
		return
	}

	if block == "DX" || block == "DY" || block == "D99" {
		rec.Directions = append(rec.Directions, block)
		return
	}

	var parts []string
	for _, raw := range strings.Split(block, "+") {
		if tok := strings.TrimSpace(raw); tok != "" {
			parts = append(parts, tok)
		}
	}
	if len(parts) == 0 {
		return
	}
	head := parts[0]

	switch {
	case strings.Contains(head, ":"):
		p.parseNumeric(head, rec)

	case irregL1Tokens.has(head):
		rec.IrregularityL1 = head
		parseIrregularity(parts[1:], rec)

	case planShapeTokens.has(head):
		rec.PlanShape = head

	case positionTokens.has(head):
		rec.Position = head

	case exteriorWallTokens.has(head):
		rec.ExteriorWalls = append(rec.ExteriorWalls, head)

	case foundationTokens.has(head):
		rec.Foundation = head

	case floorConnTokens.has(head):
		rec.FloorConnection = head

	case roofConnTokens.has(head):
		rec.RoofConnections = append(rec.RoofConnections, head)

	case roofShapeTokens.has(head):
		rec.RoofShape = head
		for _, tok := range parts[1:] {
			classifyRoofToken(tok, rec)
		}

	case roofCoveringTokens.has(head):
		rec.RoofCovering = head

	case hasPrefixAny(head, roofSystemPrefixes) && !materialL1Tokens.has(head):
		classifyRoofToken(head, rec)
		for _, tok := range parts[1:] {
			classifyRoofToken(tok, rec)
		}

	case hasPrefixAny(head, floorPrefixes) && !materialL1Tokens.has(head):
		if rec.FloorMaterial == "" {
			rec.FloorMaterial = head
		}
		for _, tok := range parts[1:] {
			if floorConnTokens.has(tok) {
				rec.FloorConnection = tok
			}
		}

	case p.isOccupancy(head):
		p.parseOccupancy(head, rec)

	default:
		if resolved := p.alias(head); materialL1Tokens.has(resolved) {
			p.parseMaterial(resolved, parts[1:], rec)
			return
		}
		if systemL1Tokens.has(head) {
			parseSystem(head, parts[1:], rec)
			return
		}
		// Floating ductility / code level tokens
		p.parseLevelTokens(parts, rec)
	}
}

func (p *Parser) alias(tok string) string {
	if resolved, ok := p.cfg.Aliases[tok]; ok {
		return resolved
	}
	return tok
}

func (p *Parser) parseNumeric(head string, rec *types.FeatureRecord) {
	key, val, _ := strings.Cut(head, ":")
	switch {
	case heightKeys.has(key):
		if rec.HeightStories == nil {
			rec.HeightStories = parseHeightValue(val)
		}
	case yearKeys.has(key):
		if rec.YearValue == nil {
			rec.YearTokenKind = key
			rec.YearValue = parseYearValue(val)
		}
	}
}

// parseHeightValue reduces a height expression to a single storey count:
// a range takes its upper bound, an open range its lower bound, the GEM
// "upper,lower" form its first value. Unknown markers return nil.
func parseHeightValue(val string) *int {
	val = strings.TrimSpace(val)
	switch strings.ToUpper(val) {
	case "UNK", "UNKN", "?", "":
		return nil
	}
	if m := numericRangeRe.FindStringSubmatch(val); m != nil {
		n, _ := strconv.Atoi(m[2])
		return &n
	}
	if m := numericPlusRe.FindStringSubmatch(val); m != nil {
		n, _ := strconv.Atoi(m[1])
		return &n
	}
	if i := strings.IndexByte(val, ','); i >= 0 {
		val = val[:i]
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	return &n
}

// parseYearValue reduces a year expression to a single year; the GEM
// "upper,lower" range form takes the midpoint.
func parseYearValue(val string) *int {
	val = strings.TrimSpace(val)
	if hi, lo, found := strings.Cut(val, ","); found {
		a, errA := strconv.Atoi(hi)
		b, errB := strconv.Atoi(lo)
		if errA != nil || errB != nil {
			return nil
		}
		mid := (a + b) / 2
		return &mid
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	return &n
}

// heightBin buckets a storey count: 1-3 low rise, 4-7 mid rise, 8+ high rise.
func heightBin(h *int) string {
	if h == nil {
		return ""
	}
	switch {
	case *h >= 1 && *h <= 3:
		return "L"
	case *h >= 4 && *h <= 7:
		return "M"
	case *h >= 8:
		return "H"
	}
	return ""
}

func (p *Parser) isOccupancy(tok string) bool {
	if occupancyL1Tokens.has(tok) {
		return true
	}
	for _, pfx := range p.occPrefixes {
		if strings.HasPrefix(tok, pfx) && len(tok) > len(pfx) {
			return true
		}
	}
	return false
}

func (p *Parser) parseOccupancy(tok string, rec *types.FeatureRecord) {
	for _, pfx := range p.occPrefixes {
		if strings.HasPrefix(tok, pfx) {
			rec.Occupancy = pfx
			if len(tok) > len(pfx) {
				rec.OccupancyDetail = tok
			}
			return
		}
	}
	rec.Occupancy = tok
}

func (p *Parser) parseMaterial(head string, rest []string, rec *types.FeatureRecord) {
	if rec.Material == "" {
		rec.Material = head
	}
	rec.MaterialAll = append(rec.MaterialAll, head)

	for _, raw := range rest {
		tok := p.alias(raw)
		switch {
		case masonryUnitTokens.has(tok), masonryReinfTokens.has(tok):
			rec.MaterialL2 = append(rec.MaterialL2, tok)
		case concreteTechTokens.has(tok):
			// Concrete technology, e.g. CR+PC for precast
			rec.MaterialL2 = append(rec.MaterialL2, tok)
			rec.MaterialAll = append(rec.MaterialAll, tok)
		case mortarTokens.has(tok), stoneTypeTokens.has(tok):
			rec.MaterialL3 = append(rec.MaterialL3, tok)
		case ductilityTokens.has(tok):
			setDuctility(tok, rec)
		case codeLevelTokens.has(tok):
			setCodeLevel(tok, rec)
		case materialL1Tokens.has(tok):
			// Secondary top-level material
			rec.MaterialL2 = append(rec.MaterialL2, tok)
			rec.MaterialAll = append(rec.MaterialAll, tok)
		}
	}
}

func parseSystem(head string, rest []string, rec *types.FeatureRecord) {
	if rec.System == "" {
		rec.System = head
	}
	rec.SystemL2 = append(rec.SystemL2, rest...)
	for _, tok := range rest {
		switch {
		case codeLevelTokens.has(tok):
			setCodeLevel(tok, rec)
		case ductilityTokens.has(tok):
			setDuctility(tok, rec)
		}
	}
}

func (p *Parser) parseLevelTokens(tokens []string, rec *types.FeatureRecord) {
	for _, tok := range tokens {
		switch {
		case codeLevelTokens.has(tok):
			setCodeLevel(tok, rec)
		case ductilityTokens.has(tok):
			setDuctility(tok, rec)
		}
	}
}

func setCodeLevel(tok string, rec *types.FeatureRecord) {
	if rec.CodeLevel == "" {
		rec.CodeLevel = tok
	}
}

func setDuctility(tok string, rec *types.FeatureRecord) {
	if rec.DuctilityToken == "" {
		rec.DuctilityToken = tok
	}
}

func parseIrregularity(tokens []string, rec *types.FeatureRecord) {
	for _, tok := range tokens {
		if !irregL3Tokens.has(tok) {
			continue
		}
		switch {
		case irregPlanTokens.has(tok):
			rec.IrregularityPlanTypes = append(rec.IrregularityPlanTypes, tok)
		case irregVertTokens.has(tok):
			rec.IrregularityVertTypes = append(rec.IrregularityVertTypes, tok)
		}
	}
}

func classifyRoofToken(tok string, rec *types.FeatureRecord) {
	switch {
	case roofCoveringTokens.has(tok):
		rec.RoofCovering = tok
	case roofConnTokens.has(tok):
		rec.RoofConnections = append(rec.RoofConnections, tok)
	case hasPrefixAny(tok, roofSystemPrefixes):
		if rec.RoofSystemMaterial == "" {
			rec.RoofSystemMaterial = tok
		}
	}
}
