package pipeline

import (
	"github.com/nao1215/finreport/internal/factory"
	"github.com/nao1215/finreport/internal/report"
)

// Job is one report generation request and its outcome.
type Job struct {
	// Archetype and Config describe the requested report.
	Archetype factory.Archetype
	Config    factory.ReportConfig

	// Plan is set by ResolveStep.
	Plan *factory.Plan

	// Report is set by BuildStep.
	Report report.Report

	// Err is the first step failure, if any. ErrorMessage is its text.
	Err          error
	ErrorMessage string

	// PerformedSteps lists the steps that completed, in order.
	PerformedSteps []string
}

// NewJob creates a Job for archetype a.
func NewJob(a factory.Archetype, cfg factory.ReportConfig) *Job {
	return &Job{Archetype: a, Config: cfg}
}

// Failed reports whether a step failed.
func (j *Job) Failed() bool {
	return j.Err != nil
}
