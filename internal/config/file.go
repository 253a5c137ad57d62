package config

// ReportDefaults holds report settings applied when the command line leaves
// them unset.
type ReportDefaults struct {
	Country     string   `yaml:"country,omitempty"`
	Start       string   `yaml:"start,omitempty"`
	End         string   `yaml:"end,omitempty"`
	Branches    []string `yaml:"branches,omitempty"`
	GeneratedBy string   `yaml:"generatedBy,omitempty"`
	SignerName  string   `yaml:"signerName,omitempty"`
	SignerRole  string   `yaml:"signerRole,omitempty"`
	Auditor     string   `yaml:"auditor,omitempty"`
	AuditNotes  string   `yaml:"auditNotes,omitempty"`

	// The flags below can only switch a feature on.
	Confidential     bool `yaml:"confidential,omitempty"`
	RequireSignature bool `yaml:"requireSignature,omitempty"`
	RequireAudit     bool `yaml:"requireAudit,omitempty"`
}

// File represents the structure of the .finreport configuration file.
type File struct {
	// Registry holds overrides merged into the configuration registry.
	// Nested maps are flattened into dot-separated keys.
	Registry map[string]any `yaml:"registry,omitempty"`

	// Defaults fills report settings the command line did not set.
	Defaults ReportDefaults `yaml:"defaults,omitempty"`
}

// ApplyTo copies the file's defaults into every unset field of cfg.
// Values already set on cfg win.
func (cf *File) ApplyTo(cfg *Config) error {
	d := cf.Defaults

	setString(&cfg.Country, d.Country)
	setString(&cfg.GeneratedBy, d.GeneratedBy)
	setString(&cfg.SignerName, d.SignerName)
	setString(&cfg.SignerRole, d.SignerRole)
	setString(&cfg.Auditor, d.Auditor)
	setString(&cfg.AuditNotes, d.AuditNotes)

	if len(cfg.Branches) == 0 && len(d.Branches) > 0 {
		cfg.Branches = append([]string(nil), d.Branches...)
	}

	if cfg.Start.IsZero() {
		t, err := ParseDate(d.Start)
		if err != nil {
			return err
		}
		cfg.Start = t
	}
	if cfg.End.IsZero() {
		t, err := ParseDate(d.End)
		if err != nil {
			return err
		}
		cfg.End = t
	}

	cfg.Confidential = cfg.Confidential || d.Confidential
	cfg.RequireSignature = cfg.RequireSignature || d.RequireSignature
	cfg.RequireAudit = cfg.RequireAudit || d.RequireAudit

	return nil
}

// setString assigns value to *dst when *dst is empty.
func setString(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
