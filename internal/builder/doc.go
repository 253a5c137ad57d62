// Package builder assembles financial reports step by step.
//
// A Builder collects the report title, type, country, period, branches and
// presentation toggles through chained setters. Build turns them into a
// document tree (general information, executive summary, consolidated data,
// graphic analysis, conclusions), renders it and wraps the result in the
// enabled decorators. The decorators are always applied in the same order,
// whatever order the toggles were set in.
package builder
