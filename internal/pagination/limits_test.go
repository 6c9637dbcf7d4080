package pagination

import (
	"errors"
	"testing"

	"github.com/amaumene/trakt-mcp/internal/errs"
)

func TestEffective(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		limit    int
		wantAPI  int
		wantMax  int
	}{
		{"explicit small", 5, 5, 5},
		{"explicit one", 1, 1, 1},
		{"explicit max page", 100, 100, 100},
		{"above page ceiling passed through", 250, 250, 250},
		{"fetch all", 0, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eff, err := Effective(tt.limit, cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if eff.APILimit != tt.wantAPI || eff.MaxItems != tt.wantMax {
				t.Errorf("Effective(%d) = (%d, %d), want (%d, %d)",
					tt.limit, eff.APILimit, eff.MaxItems, tt.wantAPI, tt.wantMax)
			}
		})
	}
}

func TestEffectiveNegative(t *testing.T) {
	_, err := Effective(-1, DefaultConfig())
	if !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestEffectiveUsesConfiguredCaps(t *testing.T) {
	cfg := Config{MaxPageSize: 25, FetchAllLimit: 60}

	eff, err := Effective(0, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eff.APILimit != 25 {
		t.Errorf("expected page size 25, got %d", eff.APILimit)
	}
	if eff.MaxItems != 60 {
		t.Errorf("expected item cap 60, got %d", eff.MaxItems)
	}
}

func TestCheckLimitPage(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		page    int
		wantErr bool
	}{
		{"fetch all without page", 0, 0, false},
		{"explicit limit with page", 10, 2, false},
		{"explicit limit without page", 10, 0, false},
		{"fetch all with page", 0, 2, true},
		{"negative limit", -3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLimitPage(tt.limit, tt.page)
			if tt.wantErr && !errors.Is(err, errs.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
