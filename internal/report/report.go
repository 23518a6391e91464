// Package report selects and renders the packages with the most files.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ralt/debstats/internal/contents"
)

// Format selects how a report is rendered
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// DefaultTopN is the number of packages shown when none is requested
const DefaultTopN = 10

// ParseFormat converts a flag value into a Format
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, table or json)", s)
	}
}

// Entry is one line of the report
type Entry struct {
	Package string `json:"package"`
	Files   int    `json:"files"`
}

// TopPackages returns the n packages with the highest counts, highest
// first. Equal counts are ordered by package name. counts is not modified.
func TopPackages(counts contents.Counts, n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}

	entries := make([]Entry, 0, len(counts))
	for name, files := range counts {
		entries = append(entries, Entry{Package: name, Files: files})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Files != entries[j].Files {
			return entries[i].Files > entries[j].Files
		}
		return entries[i].Package < entries[j].Package
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Report is a rendered top-N selection
type Report struct {
	Architecture  string  `json:"architecture"`
	Top           int     `json:"top"`
	TotalPackages int     `json:"total_packages"`
	Packages      []Entry `json:"packages"`
}

// New builds a Report of the top n packages in counts
func New(arch string, counts contents.Counts, n int) *Report {
	return &Report{
		Architecture:  arch,
		Top:           n,
		TotalPackages: len(counts),
		Packages:      TopPackages(counts, n),
	}
}

// Header returns the title line of the report
func (r *Report) Header() string {
	return fmt.Sprintf("Top %d Packages by Number of Files:", r.Top)
}

// Render writes the report to w in the given format
func (r *Report) Render(w io.Writer, format Format) error {
	switch format {
	case FormatText, "":
		return r.renderText(w)
	case FormatTable:
		return r.renderTable(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func (r *Report) renderText(w io.Writer) error {
	width := 0
	for _, e := range r.Packages {
		if len(e.Package) > width {
			width = len(e.Package)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", r.Header())
	for _, e := range r.Packages {
		fmt.Fprintf(&b, "%-*s %6d\n", width, e.Package, e.Files)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Report) renderTable(w io.Writer) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Package", "Files"})
	for i, e := range r.Packages {
		t.AppendRow(table.Row{i + 1, e.Package, e.Files})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Files", Align: text.AlignRight},
	})

	_, err := io.WriteString(w, r.Header()+"\n"+t.Render()+"\n")
	return err
}
