// Package export writes translation results to tabular formats for
// downstream exposure-model tooling.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/gem-translator/internal/types"
)

// CSVHeader lists the flattened result columns in output order.
var CSVHeader = []string{
	"gem_str",
	"best_ems_type", "best_ems_weight", "best_vc_mode", "vc_range_80",
	"confidence", "ems_entropy", "vc_entropy", "missing_features",
	"vc_class", "vc_class_int", "vc_class_base", "vc_class_base_int",
	"vc_probs_A", "vc_probs_B", "vc_probs_C", "vc_probs_D", "vc_probs_E", "vc_probs_F",
	"vc_probs_base_A", "vc_probs_base_B", "vc_probs_base_C",
	"vc_probs_base_D", "vc_probs_base_E", "vc_probs_base_F",
	"vc_range_80_base", "vc_entropy_base",
	"n_modifiers_fired", "cumulative_shift", "mod_conf_penalty", "flags",
	"material", "system", "height_bin", "erd", "family",
}

// WriteCSV flattens results into one CSV row per input, preserving order.
func WriteCSV(w io.Writer, results []*types.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range results {
		if err := cw.Write(row(r)); err != nil {
			return fmt.Errorf("failed to write CSV row for %q: %w", r.Input, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(r *types.Result) []string {
	cells := []string{
		r.Input,
		r.Summary.BestType,
		num(r.Summary.BestWeight),
		r.Summary.VCModeFinal,
		r.Summary.CredibleRange80,
		num(r.Confidence),
		num(r.Uncertainty.TypeEntropy),
		num(r.Uncertainty.VCEntropy),
		strings.Join(r.Uncertainty.MissingFeatures, ","),
		r.VCClass,
		strconv.Itoa(r.VCClassInt),
		r.VCClassBase,
		strconv.Itoa(r.VCClassBaseInt),
	}
	for _, cls := range types.ClassOrder {
		cells = append(cells, num(r.VCProbs[cls]))
	}
	for _, cls := range types.ClassOrder {
		cells = append(cells, num(r.VCProbsBase[cls]))
	}
	cells = append(cells,
		r.Summary.CredibleRange80Base,
		num(r.Uncertainty.VCEntropyBase),
		strconv.Itoa(r.Summary.ModifiersFired),
		num(r.Summary.CumulativeShift),
		num(r.Uncertainty.ModifierConfidencePenalty),
		strings.Join(r.Uncertainty.Flags, "|"),
		r.Parsed.Material,
		r.Parsed.System,
		r.Parsed.HeightBin,
		r.Parsed.ERD,
		r.Parsed.Family,
	)
	return cells
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
