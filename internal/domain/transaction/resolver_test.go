package transaction

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	appErrors "github.com/santiagopugliese/personal-finances/internal/errors"
)

func TestRound2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"10.005", "10.01"},
		{"10.004", "10"},
		{"-10.005", "-10.01"},
		{"2.675", "2.68"},
		{"120050", "120050"},
		{"0", "0"},
	}

	for _, tt := range tests {
		got := Round2(decimal.RequireFromString(tt.in))
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("Round2(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestResolveAmountARS(t *testing.T) {
	t.Parallel()

	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	p := func(s string) *decimal.Decimal {
		v := d(s)
		return &v
	}

	tests := []struct {
		name        string
		amountUSD   string
		explicitARS *decimal.Decimal
		rate        *decimal.Decimal
		want        string
		wantErr     bool
	}{
		{
			name:        "explicit value wins verbatim",
			amountUSD:   "100",
			explicitARS: p("5000.123"),
			rate:        p("1200.50"),
			want:        "5000.123",
		},
		{
			name:      "rate conversion rounds half away from zero",
			amountUSD: "100",
			rate:      p("1200.505"),
			want:      "120050.50",
		},
		{
			name:      "plain conversion",
			amountUSD: "100",
			rate:      p("1200.50"),
			want:      "120050.00",
		},
		{
			name:      "no rate and no explicit value",
			amountUSD: "100",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveAmountARS(d(tt.amountUSD), tt.explicitARS, tt.rate)
			if tt.wantErr {
				if !errors.Is(err, appErrors.ErrRateUnavailable) {
					t.Fatalf("expected ErrRateUnavailable, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(d(tt.want)) {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}
