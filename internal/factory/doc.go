// Package factory creates the standard financial report archetypes.
//
// Each archetype (sales, inventory, financial, branch, executive,
// consolidated) is one row
// of a literal policy table. The row fixes the title, the type label, which
// optional sections are shown and where the watermark, signature and audit
// toggles come from. Resolve turns an archetype and a ReportConfig into a
// Plan without building anything, which keeps the policy testable on its own.
// Factory.Create applies the plan to a builder.Builder.
package factory
