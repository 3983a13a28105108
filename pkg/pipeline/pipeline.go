// Package pipeline runs a sheet job end to end.
//
// This package implements the ingest → plan → compose → render pipeline used
// by every CLI command that produces sheets. By centralizing this logic, the
// one-off render command and config-driven runs behave identically.
//
// # Architecture
//
// A job is processed in four stages:
//
//  1. Ingest: scan the card directory and load fronts and backs
//  2. Plan: compute the page grid from the job geometry
//  3. Compose: paginate fronts (unmirrored) and backs (mirrored) onto the plan
//  4. Render: write each sheet to PDF (and JSON when requested)
//
// Fronts and backs share one plan, so a back lands behind its front when the
// sheets are printed duplex. Rendering is cached by content: identical card
// bytes and settings skip straight to the cached PDF.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, job)
//	if err != nil {
//	    return err
//	}
//	paths, err := runner.Write(result)
package pipeline

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/cardsheets/pkg/card"
	"github.com/matzehuels/cardsheets/pkg/compose"
	"github.com/matzehuels/cardsheets/pkg/config"
	"github.com/matzehuels/cardsheets/pkg/layout"
)

// Format constants for output formats.
const (
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Job is the validated job that was run.
	Job config.Job

	// Plan is the page geometry shared by both sheets.
	Plan layout.Plan

	// Fronts and Backs are the composed sheets. A side is nil when the card
	// directory has no images for it.
	Fronts *compose.Sheet
	Backs  *compose.Sheet

	// Artifacts contains rendered outputs keyed by [ArtifactName].
	Artifacts map[string][]byte

	// Warnings are non-fatal problems worth showing to the user.
	Warnings []string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which sheets came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FrontCount  int
	BackCount   int
	FrontPages  int
	BackPages   int
	IngestTime  time.Duration
	ComposeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each sheet.
type CacheInfo struct {
	FrontHit bool // Whether every front artifact came from cache
	BackHit  bool // Whether every back artifact came from cache
}

// ArtifactName returns the key of a side's artifact in [Result.Artifacts],
// e.g. "front.pdf".
func ArtifactName(side card.Side, format string) string {
	return side.String() + "." + format
}

// OutputPath returns where an artifact is written for job. JSON exports sit
// next to the PDF with a .json extension.
func OutputPath(job config.Job, side card.Side, format string) string {
	out := job.Output(side)
	if format == FormatPDF {
		return out
	}
	return strings.TrimSuffix(out, filepath.Ext(out)) + "." + format
}

// Formats returns the formats rendered for job.
func Formats(job config.Job) []string {
	if job.JSON {
		return []string{FormatPDF, FormatJSON}
	}
	return []string{FormatPDF}
}
