package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MatchMode selects the comparison policy for a run.
type MatchMode string

const (
	// MatchExact requires the normalized value to appear as a contiguous
	// substring of the document text.
	MatchExact MatchMode = "exact"
	// MatchFuzzy scores token-sort similarity against the whole document
	// text and mismatches below the threshold. Quantities are always
	// checked with exact containment regardless of this setting.
	MatchFuzzy MatchMode = "fuzzy"
)

// Default thresholds for fuzzy matching, from the verifier's historical
// defaults.
const (
	DefaultThreshold = 90
	// ModerateFloor is the similarity below which a product-name mismatch
	// is classified Critical instead of Moderate.
	ModerateFloor = 70
)

// RunOptions are the run-time parameters of one reconciliation run. They are
// never persisted; mode and thresholds come from the command line.
type RunOptions struct {
	Mode MatchMode `json:"mode" validate:"required,oneof=exact fuzzy"`
	// Threshold is the fuzzy similarity floor in [0,100].
	Threshold int `json:"threshold" validate:"min=0,max=100"`
	// ProductThreshold overrides Threshold for product names when non-zero.
	ProductThreshold int `json:"product_threshold" validate:"min=0,max=100"`
	// Workers bounds the per-document evaluation fan-out. Zero or one means
	// sequential; results are reassembled in input order either way.
	Workers int `json:"workers" validate:"min=0"`
}

// DefaultRunOptions returns the options the verifier uses when the operator
// specifies nothing.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Mode:      MatchExact,
		Threshold: DefaultThreshold,
	}
}

// ThresholdFor returns the effective threshold for the given field label.
func (o RunOptions) ThresholdFor(label FieldLabel) int {
	if label == LabelProduct && o.ProductThreshold > 0 {
		return o.ProductThreshold
	}
	if o.Threshold > 0 {
		return o.Threshold
	}
	return DefaultThreshold
}

var optionsValidator = validator.New()

// Validate checks the options before a run starts.
func (o RunOptions) Validate() error {
	if err := optionsValidator.Struct(o); err != nil {
		return fmt.Errorf("invalid run options: %w", err)
	}
	return nil
}
