package config

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestNewRegistryDefaults documents the built-in settings.
func TestNewRegistryDefaults(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	tests := []struct {
		key  string
		want any
	}{
		{key: KeyCompanyName, want: "FinanCorp S.A."},
		{key: KeyCompanyHeadquarters, want: "España"},
		{key: KeySystemVersion, want: "1.0.0"},
		{key: "report.format.spain", want: "EUR - dd/MM/yyyy"},
		{key: "report.format.mexico", want: "MXN - dd/MM/yyyy"},
		{key: "report.format.argentina", want: "ARS - dd/MM/yyyy"},
		{key: "report.format.peru", want: "PEN - dd/MM/yyyy"},
		{key: "report.template.sales", want: "Corporate Sales Report"},
		{key: KeyEncryptionEnabled, want: true},
		{key: KeyAuditEnabled, want: true},
		{key: KeyMaxBranches, want: 50},
		{key: KeyIntegrationTimeout, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			got, ok := r.Get(tt.key)
			if !ok {
				t.Fatalf("expected %q to be set", tt.key)
			}
			if got != tt.want {
				t.Errorf("Get(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

// TestRegistryOperations tests reads and writes.
func TestRegistryOperations(t *testing.T) {
	t.Parallel()

	t.Run("set then get", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		r.Set("custom.flag", true)

		got, ok := r.Get("custom.flag")
		if !ok || got != true {
			t.Errorf("Get() = %v, %v; want true, true", got, ok)
		}
		if !r.Has("custom.flag") {
			t.Error("expected Has to report true")
		}
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		if _, ok := r.Get("does.not.exist"); ok {
			t.Error("expected missing key")
		}
		if r.Has("does.not.exist") {
			t.Error("expected Has to report false")
		}
		if got := r.StringOr("does.not.exist", "fallback"); got != "fallback" {
			t.Errorf("StringOr() = %q, want fallback", got)
		}
	})

	t.Run("GetString stringifies values", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		if got, _ := r.GetString(KeyMaxBranches); got != "50" {
			t.Errorf("GetString(int) = %q, want 50", got)
		}
		if got, _ := r.GetString(KeyAuditEnabled); got != "true" {
			t.Errorf("GetString(bool) = %q, want true", got)
		}
	})

	t.Run("GetString rejects nil", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		r.Set("nil.value", nil)
		if _, ok := r.GetString("nil.value"); ok {
			t.Error("expected nil value to be reported as unset")
		}
		if !r.Has("nil.value") {
			t.Error("expected key to be present")
		}
	})

	t.Run("All returns a copy", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		all := r.All()
		all[KeyCompanyName] = "changed"
		delete(all, KeySystemVersion)

		if got, _ := r.GetString(KeyCompanyName); got != "FinanCorp S.A." {
			t.Errorf("registry changed through copy: %q", got)
		}
		if !r.Has(KeySystemVersion) {
			t.Error("delete on copy removed registry key")
		}
	})

	t.Run("Keys are sorted", func(t *testing.T) {
		t.Parallel()

		keys := NewRegistry().Keys()
		for i := 1; i < len(keys); i++ {
			if keys[i-1] >= keys[i] {
				t.Fatalf("keys not sorted at %d: %q >= %q", i, keys[i-1], keys[i])
			}
		}
	})
}

// TestRegistryMerge tests applying config file overrides.
func TestRegistryMerge(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Merge(map[string]any{
		"company": map[string]any{
			"name": "Acme",
			"legal": map[string]any{
				"id": "B-123",
			},
		},
		"report.format.chile": "CLP - dd/MM/yyyy",
	})

	want := map[string]any{
		KeyCompanyName:        "Acme",
		"company.legal.id":    "B-123",
		"report.format.chile": "CLP - dd/MM/yyyy",
	}
	for key, v := range want {
		got, _ := r.Get(key)
		if diff := cmp.Diff(v, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", key, diff)
		}
	}
	if r.Has("company") {
		t.Error("expected nested map to be flattened")
	}
}

// TestReportFormatForCountry tests the per-country format lookup.
func TestReportFormatForCountry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	tests := []struct {
		country string
		want    string
		wantOK  bool
	}{
		{country: "spain", want: "EUR - dd/MM/yyyy", wantOK: true},
		{country: "Spain", want: "EUR - dd/MM/yyyy", wantOK: true},
		{country: " MEXICO ", want: "MXN - dd/MM/yyyy", wantOK: true},
		{country: "Peru", want: "PEN - dd/MM/yyyy", wantOK: true},
		{country: "Narnia", wantOK: false},
		{country: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.country), func(t *testing.T) {
			t.Parallel()

			got, ok := r.ReportFormatForCountry(tt.country)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ReportFormatForCountry(%q) = %q, %v; want %q, %v",
					tt.country, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// TestRegistryConcurrentAccess exercises the lock under the race detector.
func TestRegistryConcurrentAccess(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("worker.%d", i)
			for j := range 100 {
				r.Set(key, j)
				_, _ = r.Get(KeyCompanyName)
				_ = r.All()
			}
		}()
	}
	wg.Wait()

	for i := range 16 {
		if got, _ := r.Get(fmt.Sprintf("worker.%d", i)); got != 99 {
			t.Errorf("worker.%d = %v, want 99", i, got)
		}
	}
}

// TestDefault tests the process-wide registry.
// It does not run in parallel because it swaps the shared instance.
func TestDefault(t *testing.T) {
	first := Default()
	if first == nil {
		t.Fatal("expected a registry")
	}
	if Default() != first {
		t.Error("expected the same registry on every call")
	}

	replacement := NewRegistry()
	replacement.Set(KeyCompanyName, "Swapped")

	prev := SetDefault(replacement)
	t.Cleanup(func() { SetDefault(prev) })

	if prev != first {
		t.Error("expected SetDefault to return the previous registry")
	}
	if got, _ := Default().GetString(KeyCompanyName); got != "Swapped" {
		t.Errorf("company.name = %q, want Swapped", got)
	}
}
