// Package display shapes command results into a renderer-neutral
// document model. The terminal and text renderers walk the same
// document; only the styling differs. Machine formats (json, yaml)
// bypass this package and encode the raw result.
package display

import (
	"fmt"
	"strings"

	"github.com/scopelink/scopelink/pkg/commands/deps"
	"github.com/scopelink/scopelink/pkg/commands/link"
	"github.com/scopelink/scopelink/pkg/commands/status"
	"github.com/scopelink/scopelink/pkg/commands/unlink"
	"github.com/scopelink/scopelink/pkg/symlink"
)

// Status classifies a row for styling.
type Status string

const (
	StatusSuccess  Status = "success"
	StatusWarning  Status = "warning"
	StatusConflict Status = "conflict"
	StatusInfo     Status = "info"
	StatusMuted    Status = "muted"
	StatusInternal Status = "internal"
	StatusExternal Status = "external"
)

// Document is the renderer-neutral representation of one command's
// output.
type Document struct {
	// Message is the headline summary line.
	Message string

	// Success controls the headline indicator.
	Success bool

	// DryRun appends the dry-run marker to the headline.
	DryRun bool

	// Sections are rendered in order under the headline.
	Sections []Section

	// Notes are trailing warning lines.
	Notes []string
}

// Section is a titled group of rows.
type Section struct {
	Title string
	Rows  []Row
}

// Row is one label/detail line.
type Row struct {
	Status Status
	Label  string
	Detail string
}

// FromResult shapes any known command result. Unknown types come back
// as a bare document carrying their default formatting.
func FromResult(result interface{}) *Document {
	switch v := result.(type) {
	case *link.Result:
		return FromLink(v)
	case *unlink.Result:
		return FromUnlink(v)
	case *status.Result:
		return FromStatus(v)
	case *deps.Result:
		return FromDeps(v)
	case *Document:
		return v
	default:
		return &Document{Message: fmt.Sprintf("%+v", result), Success: true}
	}
}

// FromLink shapes a link result.
func FromLink(result *link.Result) *Document {
	doc := &Document{
		Message: result.Message,
		Success: result.Success,
		DryRun:  result.DryRun,
	}

	if len(result.Linked) > 0 {
		section := Section{Title: "Linked dependencies"}
		for _, dep := range result.Linked {
			section.Rows = append(section.Rows, Row{
				Status: actionStatus(dep.Action),
				Label:  dep.Name,
				Detail: dep.Source,
			})
		}
		doc.Sections = append(doc.Sections, section)
	}

	if len(result.Skipped) > 0 {
		section := Section{Title: "Skipped"}
		for _, name := range result.Skipped {
			section.Rows = append(section.Rows, Row{
				Status: StatusWarning,
				Label:  name,
				Detail: "no link source",
			})
		}
		doc.Sections = append(doc.Sections, section)
	}

	if len(result.Packages) > 0 {
		section := Section{Title: "Packages"}
		for _, pkg := range result.Packages {
			section.Rows = append(section.Rows, Row{
				Status: StatusSuccess,
				Label:  pkg.Name,
				Detail: strings.Join(pkg.Consumers, ", "),
			})
		}
		doc.Sections = append(doc.Sections, section)
	}

	return doc
}

// FromUnlink shapes an unlink result.
func FromUnlink(result *unlink.Result) *Document {
	doc := &Document{
		Message: result.Message,
		Success: result.Success,
		DryRun:  result.DryRun,
	}

	if len(result.Removed) > 0 {
		section := Section{Title: "Removed links"}
		for _, removed := range result.Removed {
			section.Rows = append(section.Rows, Row{
				Status: StatusSuccess,
				Label:  removed.Name,
				Detail: removed.Target,
			})
		}
		doc.Sections = append(doc.Sections, section)
	}

	if len(result.Packages) > 0 {
		section := Section{Title: "Packages"}
		for _, pkg := range result.Packages {
			row := Row{
				Status: StatusSuccess,
				Label:  pkg.Name,
				Detail: strings.Join(pkg.Consumers, ", "),
			}
			if len(pkg.Failures) > 0 {
				row.Status = StatusWarning
				row.Detail = "failed for " + strings.Join(pkg.Failures, ", ")
			}
			section.Rows = append(section.Rows, row)
		}
		doc.Sections = append(doc.Sections, section)
	}

	if len(result.Residual) > 0 {
		doc.Notes = append(doc.Notes, fmt.Sprintf(
			"Same-scope links remain (%s), rerun with --clean to restore registry versions",
			strings.Join(result.Residual, ", ")))
	}

	return doc
}

// FromStatus shapes a status report. Each package becomes a section;
// rows carry the internal/external classification.
func FromStatus(result *status.Result) *Document {
	doc := &Document{
		Message: fmt.Sprintf("%d linked package(s) in %d scanned", len(result.Packages), result.Scanned),
		Success: true,
	}

	for _, pkg := range result.Packages {
		section := Section{Title: pkg.Name}
		for _, record := range pkg.Links {
			class := StatusInternal
			if record.IsExternal {
				class = StatusExternal
			}
			section.Rows = append(section.Rows, Row{
				Status: class,
				Label:  record.Dependency,
				Detail: record.Resolved,
			})
		}
		doc.Sections = append(doc.Sections, section)
	}

	return doc
}

// FromDeps shapes a dependency report.
func FromDeps(result *deps.Result) *Document {
	doc := &Document{
		Message: fmt.Sprintf("%d dependencies, %d conflicting", len(result.Dependencies), result.Conflicts),
		Success: result.Conflicts == 0,
		DryRun:  result.DryRun,
	}

	for _, dep := range result.Dependencies {
		title := dep.Name
		rowStatus := StatusMuted
		if dep.Conflict {
			title += " (conflict)"
			rowStatus = StatusConflict
		}
		section := Section{Title: title}
		for _, usage := range dep.Usages {
			section.Rows = append(section.Rows, Row{
				Status: rowStatus,
				Label:  usage.Package,
				Detail: fmt.Sprintf("%s (%s)", usage.Spec, usage.Section),
			})
		}
		doc.Sections = append(doc.Sections, section)
	}

	if len(result.Aligned) > 0 {
		section := Section{Title: "Aligned"}
		for _, alignment := range result.Aligned {
			section.Rows = append(section.Rows, Row{
				Status: StatusSuccess,
				Label:  alignment.Package,
				Detail: fmt.Sprintf("%s: %s -> %s", alignment.Section, alignment.From, alignment.To),
			})
		}
		doc.Sections = append(doc.Sections, section)
	}

	return doc
}

func actionStatus(action symlink.Action) Status {
	switch action {
	case symlink.ActionUpToDate:
		return StatusMuted
	case symlink.ActionWouldCreate, symlink.ActionWouldRepair,
		symlink.ActionWouldReplaceDir, symlink.ActionWouldReplaceFile:
		return StatusInfo
	default:
		return StatusSuccess
	}
}
