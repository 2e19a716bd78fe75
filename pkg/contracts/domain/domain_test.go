package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldLabel_Reason(t *testing.T) {
	tests := []struct {
		label    FieldLabel
		expected ReasonCode
	}{
		{LabelProduct, ReasonProduct},
		{LabelHSCode, ReasonHSCode},
		{LabelQuantity, ReasonQuantity},
		{LabelHeader, ReasonHeader},
	}

	for _, tt := range tests {
		t.Run(string(tt.label), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.label.Reason())
		})
	}
}

func TestDocumentStatus_Marker(t *testing.T) {
	tests := []struct {
		name     string
		status   DocumentStatus
		expected string
	}{
		{
			name:     "matched",
			status:   DocumentStatus{Document: "coo.pdf"},
			expected: "✅",
		},
		{
			name:     "single reason",
			status:   DocumentStatus{Document: "bl.pdf", Reasons: []ReasonCode{ReasonHSCode}},
			expected: "❌ HSC",
		},
		{
			name:     "multiple reasons keep order",
			status:   DocumentStatus{Document: "bl.pdf", Reasons: []ReasonCode{ReasonProduct, ReasonQuantity}},
			expected: "❌ PNM, QTY",
		},
		{
			name:     "extraction failure wins over reasons",
			status:   DocumentStatus{Document: "fumi.pdf", Failed: true},
			expected: "EXTRACTION FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.Marker())
		})
	}
}

func TestRowResult_Status(t *testing.T) {
	matched := RowResult{Matched: true}
	assert.Equal(t, "✅", matched.Status())

	mismatched := RowResult{Reasons: []ReasonCode{ReasonHSCode, ReasonQuantity}}
	assert.Equal(t, "❌ HSC, QTY", mismatched.Status())
}

func TestRunOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    RunOptions
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			opts:    DefaultRunOptions(),
			wantErr: false,
		},
		{
			name:    "fuzzy with thresholds",
			opts:    RunOptions{Mode: MatchFuzzy, Threshold: 95, ProductThreshold: 85},
			wantErr: false,
		},
		{
			name:    "unknown mode",
			opts:    RunOptions{Mode: "loose", Threshold: 90},
			wantErr: true,
		},
		{
			name:    "missing mode",
			opts:    RunOptions{Threshold: 90},
			wantErr: true,
		},
		{
			name:    "threshold above 100",
			opts:    RunOptions{Mode: MatchFuzzy, Threshold: 101},
			wantErr: true,
		},
		{
			name:    "negative workers",
			opts:    RunOptions{Mode: MatchExact, Workers: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRunOptions_ThresholdFor(t *testing.T) {
	opts := RunOptions{Mode: MatchFuzzy, Threshold: 92, ProductThreshold: 85}
	assert.Equal(t, 85, opts.ThresholdFor(LabelProduct))
	assert.Equal(t, 92, opts.ThresholdFor(LabelHSCode))

	zero := RunOptions{Mode: MatchFuzzy}
	assert.Equal(t, DefaultThreshold, zero.ThresholdFor(LabelProduct))
}
