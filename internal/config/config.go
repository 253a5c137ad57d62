package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "finreport"

	// DefaultConcurrency is the number of reports the batch command generates
	// at the same time. Generation is CPU-bound and short, so a small pool is
	// enough to keep every core busy.
	DefaultConcurrency = 4

	// DateLayout is the layout accepted for period bounds on the command line
	// and in the config file (yyyy-mm-dd).
	DateLayout = "2006-01-02"
)

// Config holds all configuration options for a finreport invocation.
// It is populated from CLI flags, completed from the config file and then
// passed down explicitly rather than read from global state.
type Config struct {
	// Archetypes lists the report archetypes to generate.
	// The generate command uses exactly one, the batch command one or more.
	Archetypes []string

	// Custom marks a free-form report assembled from Title and Type instead
	// of an archetype. Archetypes is ignored when set.
	Custom bool

	// Title and Type name a custom report.
	Title string
	Type  string

	// Country selects the reporting currency. Empty means corporate scope.
	Country string

	// Start and End bound the reporting period. A zero value is unset.
	Start time.Time
	End   time.Time

	// Branches lists the branches included in the report.
	// Empty means all branches.
	Branches []string

	// Confidential adds the watermark to archetypes that honour it.
	Confidential bool

	// RequireSignature and RequireAudit add the signature and audit blocks
	// to archetypes that honour them.
	RequireSignature bool
	RequireAudit     bool

	// Charts, NoSummary, NoHeader and NoFooter toggle the optional parts of
	// a custom report.
	Charts    bool
	NoSummary bool
	NoHeader  bool
	NoFooter  bool

	// GeneratedBy is printed in the footer.
	GeneratedBy string

	// SignerName and SignerRole identify who signs the report.
	SignerName string
	SignerRole string

	// Auditor and AuditNotes fill the audit block.
	Auditor    string
	AuditNotes string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport wraps each report in a JSON envelope instead of printing
	// the plain text.
	JSONReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// Tee also writes the reports to stdout when ReportFile is set.
	Tee bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the usual locations.
	ConfigFilePath string

	// File holds the settings loaded from the configuration file, if any.
	File *File

	// Concurrency is the number of reports generated at the same time by the
	// batch command.
	Concurrency int
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Concurrency: DefaultConcurrency,
	}
}

// XDGConfigDir returns the XDG config directory for finreport.
// On Linux: ~/.config/finreport
// On macOS: ~/Library/Application Support/finreport
// On Windows: %APPDATA%\finreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a sentinel error.
func (c *Config) Validate() error {
	if !c.Custom && len(c.Archetypes) == 0 {
		return ErrNoArchetype
	}

	if !c.Start.IsZero() && !c.End.IsZero() && c.Start.After(c.End) {
		return fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidPeriod, c.Start.Format(DateLayout), c.End.Format(DateLayout))
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	return c.ValidateOutput()
}

// ValidateOutput checks the output settings only. Commands that produce
// reports without an archetype use it instead of Validate.
func (c *Config) ValidateOutput() error {
	if c.Tee && c.ReportFile == "" {
		return ErrTeeWithoutOutput
	}
	return nil
}

// ParseDate parses a period bound in DateLayout. An empty string yields the
// zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a yyyy-mm-dd date", ErrInvalidPeriod, s)
	}
	return t, nil
}
