package builder

import (
	"errors"
	"strings"
	"testing"
)

// TestNewStatistics tests the branch statistics block.
func TestNewStatistics(t *testing.T) {
	t.Parallel()

	t.Run("renders every figure", func(t *testing.T) {
		t.Parallel()

		r, err := NewStatistics(BranchStatistics{
			Code:     "ES-001",
			Name:     "Madrid Centro",
			Country:  "España",
			City:     "Madrid",
			Products: 1200,
			Sales:    3450,
			Total:    1250000,
		})
		if err != nil {
			t.Fatalf("NewStatistics() error: %v", err)
		}

		if r.Title() != "Branch Statistics: Madrid Centro" {
			t.Errorf("Title() = %q", r.Title())
		}
		if r.Type() != StatisticsType {
			t.Errorf("Type() = %q", r.Type())
		}

		out := r.Generate()
		rule := strings.Repeat("═", 51)
		if !strings.HasPrefix(out, rule+"\n  BRANCH STATISTICS\n"+rule+"\n\n") {
			t.Errorf("unexpected opening:\n%s", out)
		}
		if !strings.HasSuffix(out, "Total amount sold: EUR 1,250,000.00\n"+rule+"\n") {
			t.Errorf("unexpected closing:\n%s", out)
		}
		assertOrder(t, out,
			"Code: ES-001\n",
			"Name: Madrid Centro\n",
			"Country: España\n",
			"City: Madrid\n\n",
			"Total products: 1,200\n",
			"Total sales: 3,450\n",
		)
	})

	t.Run("explicit currency wins", func(t *testing.T) {
		t.Parallel()

		r, err := NewStatistics(BranchStatistics{Code: "X", Name: "Y", Country: "Mexico", Currency: "USD", Total: 10.5})
		if err != nil {
			t.Fatalf("NewStatistics() error: %v", err)
		}
		if !strings.Contains(r.Generate(), "Total amount sold: USD 10.50\n") {
			t.Errorf("expected USD amount:\n%s", r.Generate())
		}
	})

	t.Run("missing location reads N/A", func(t *testing.T) {
		t.Parallel()

		r, err := NewStatistics(BranchStatistics{Code: "X", Name: "Y"})
		if err != nil {
			t.Fatalf("NewStatistics() error: %v", err)
		}
		out := r.Generate()
		for _, want := range []string{"Country: N/A\n", "City: N/A\n", "Total amount sold: " + DefaultCurrency + " 0.00\n"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in:\n%s", want, out)
			}
		}
	})

	invalid := []struct {
		name  string
		stats BranchStatistics
	}{
		{name: "missing code", stats: BranchStatistics{Name: "Y"}},
		{name: "blank name", stats: BranchStatistics{Code: "X", Name: "  "}},
		{name: "negative products", stats: BranchStatistics{Code: "X", Name: "Y", Products: -1}},
		{name: "negative sales", stats: BranchStatistics{Code: "X", Name: "Y", Sales: -1}},
		{name: "negative total", stats: BranchStatistics{Code: "X", Name: "Y", Total: -0.01}},
	}
	for _, tt := range invalid {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := NewStatistics(tt.stats); !errors.Is(err, ErrConfiguration) {
				t.Errorf("expected ErrConfiguration, got %v", err)
			}
		})
	}
}
