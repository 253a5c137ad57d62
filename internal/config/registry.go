package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Well-known registry keys.
const (
	KeyCompanyName         = "company.name"
	KeyCompanyHeadquarters = "company.headquarters"
	KeySystemVersion       = "system.version"

	// KeyReportFormatPrefix is followed by a lower-case country name.
	KeyReportFormatPrefix = "report.format."

	// KeyReportTemplatePrefix is followed by a report archetype name.
	KeyReportTemplatePrefix = "report.template."

	KeyEncryptionEnabled  = "security.encryption.enabled"
	KeyAuditEnabled       = "security.audit.enabled"
	KeyMaxBranches        = "integration.max.branches"
	KeyIntegrationTimeout = "integration.timeout.seconds"
)

// Registry is a process-wide key/value store of application settings.
// Keys are dot-namespaced; values are strings, booleans or integers.
// A Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewRegistry creates a Registry populated with the default settings.
func NewRegistry() *Registry {
	return &Registry{values: defaultValues()}
}

// defaultValues returns a fresh copy of the built-in settings.
func defaultValues() map[string]any {
	return map[string]any{
		KeyCompanyName:         "FinanCorp S.A.",
		KeyCompanyHeadquarters: "España",
		KeySystemVersion:       "1.0.0",

		KeyReportFormatPrefix + "spain":     "EUR - dd/MM/yyyy",
		KeyReportFormatPrefix + "mexico":    "MXN - dd/MM/yyyy",
		KeyReportFormatPrefix + "argentina": "ARS - dd/MM/yyyy",
		KeyReportFormatPrefix + "peru":      "PEN - dd/MM/yyyy",

		KeyReportTemplatePrefix + "sales":     "Corporate Sales Report",
		KeyReportTemplatePrefix + "inventory": "Inventory Report",
		KeyReportTemplatePrefix + "financial": "Consolidated Financial Report",

		KeyEncryptionEnabled: true,
		KeyAuditEnabled:      true,

		KeyMaxBranches:        50,
		KeyIntegrationTimeout: 30,
	}
}

// Get returns the value stored under key.
func (r *Registry) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	return v, ok
}

// GetString returns the value stored under key formatted as text.
// It reports false when the key is absent or its value is nil.
func (r *Registry) GetString(key string) (string, bool) {
	v, ok := r.Get(key)
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// StringOr returns GetString(key), or fallback when the key is unset.
func (r *Registry) StringOr(key, fallback string) string {
	if s, ok := r.GetString(key); ok {
		return s
	}
	return fallback
}

// Set stores value under key, replacing any previous value.
func (r *Registry) Set(key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = value
}

// Has reports whether key is present.
func (r *Registry) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// All returns a copy of every setting. Changing the copy does not affect
// the registry.
func (r *Registry) All() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return maps.Clone(r.values)
}

// Keys returns every key in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.values))
}

// Merge stores every entry of overrides, replacing existing values.
// Nested maps, as produced by a YAML document, are flattened into
// dot-separated keys.
func (r *Registry) Merge(overrides map[string]any) {
	flat := make(map[string]any, len(overrides))
	flatten("", overrides, flat)

	r.mu.Lock()
	defer r.mu.Unlock()

	maps.Copy(r.values, flat)
}

// flatten copies src into dst, joining nested map keys with dots.
func flatten(prefix string, src map[string]any, dst map[string]any) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, dst)
			continue
		}
		dst[key] = v
	}
}

// ReportFormatForCountry returns the report format configured for country.
// The lookup is case-insensitive and ignores surrounding spaces.
func (r *Registry) ReportFormatForCountry(country string) (string, bool) {
	c := cases.Lower(language.Und).String(strings.TrimSpace(country))
	return r.GetString(KeyReportFormatPrefix + c)
}

// ReportTemplate returns the template title configured for an archetype.
func (r *Registry) ReportTemplate(archetype string) (string, bool) {
	return r.GetString(KeyReportTemplatePrefix + archetype)
}

var (
	defaultOnce     sync.Once
	defaultRegistry atomic.Pointer[Registry]
)

// Default returns the process-wide Registry, creating it on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry.CompareAndSwap(nil, NewRegistry())
	})
	return defaultRegistry.Load()
}

// SetDefault replaces the process-wide Registry and returns the previous one.
// It is intended for tests; the CLI passes its registry explicitly.
func SetDefault(r *Registry) *Registry {
	Default()
	return defaultRegistry.Swap(r)
}
