package artificial

import (
	"testing"

	"scribe/sources/tracing"
)

func TestForSummaryTierBoundaries(t *testing.T) {
	log := tracing.NewConsoleLogger()
	selector := NewSelector(testAIConfig())

	tests := []struct {
		name    string
		tokens  int
		want    string
		wantErr bool
	}{
		{name: "small request gets the high tier", tokens: 2999, want: "gpt-4"},
		{name: "high tier boundary falls to mid", tokens: 3000, want: "gpt-3.5-turbo-16k"},
		{name: "large request gets the mid tier", tokens: 12000, want: "gpt-3.5-turbo-16k"},
		{name: "ceiling itself is accepted", tokens: 13000, want: "gpt-3.5-turbo-16k"},
		{name: "over ceiling is rejected", tokens: 13001, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tier, err := selector.ForSummary(log, test.tokens)
			if test.wantErr {
				if err == nil {
					t.Fatal("expected rejection")
				}
				if !IsValidation(err) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tier.Name != test.want {
				t.Fatalf("expected tier %q, got %q", test.want, tier.Name)
			}
		})
	}
}

func TestForCleanupSingleTier(t *testing.T) {
	log := tracing.NewConsoleLogger()
	selector := NewSelector(testAIConfig())

	tier, err := selector.ForCleanup(log, 75000)
	if err != nil {
		t.Fatalf("unexpected error at the ceiling: %v", err)
	}
	if tier.Name != "gpt-4o" {
		t.Fatalf("expected gpt-4o, got %q", tier.Name)
	}

	if _, err := selector.ForCleanup(log, 75001); err == nil {
		t.Fatal("expected rejection above the ceiling")
	}
}
