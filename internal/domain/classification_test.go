package domain_test

import (
	"testing"

	"github.com/nyayasetu/classifier/internal/domain"
)

func TestClassification_IsUnknown(t *testing.T) {
	tests := []struct {
		name           string
		classification domain.Classification
		want           bool
	}{
		{
			name:           "unknown sentinel",
			classification: domain.Classification{Domain: domain.DomainUnknown, Confidence: 0.30},
			want:           true,
		},
		{
			name:           "committed domain",
			classification: domain.Classification{Domain: domain.DomainCriminalLaw, Confidence: 0.85},
			want:           false,
		},
		{
			name:           "zero value",
			classification: domain.Classification{},
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.classification.IsUnknown(); got != tt.want {
				t.Errorf("Classification.IsUnknown() = %v, want %v", got, tt.want)
			}
		})
	}
}
