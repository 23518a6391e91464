// Package contents parses apt Contents indices, which map installed file
// paths to the packages that ship them.
package contents

import (
	"bytes"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Counts maps a package identifier to the number of files it ships
type Counts map[string]int

// SplitLine splits a Contents line into its file path and package-list
// field. The split happens at the last run of whitespace, so the path keeps
// any inner spaces. ok is false when the line has no package-list field.
func SplitLine(line string) (path, packages string, ok bool) {
	line = strings.TrimRightFunc(line, unicode.IsSpace)

	idx := strings.LastIndexFunc(line, unicode.IsSpace)
	if idx == -1 {
		return "", "", false
	}

	path = strings.TrimRightFunc(line[:idx], unicode.IsSpace)
	_, size := utf8.DecodeRuneInString(line[idx:])
	packages = line[idx+size:]
	if path == "" || packages == "" {
		return "", "", false
	}

	return path, packages, true
}

// SplitPackages splits a package-list field on commas into trimmed,
// non-empty, unique names.
func SplitPackages(field string) []string {
	parts := strings.Split(field, ",")
	names := make([]string, 0, len(parts))

	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}

		dup := false
		for _, seen := range names {
			if seen == name {
				dup = true
				break
			}
		}
		if !dup {
			names = append(names, name)
		}
	}

	return names
}

// Counter counts files per package in Contents data
type Counter struct {
	log logrus.FieldLogger
}

// NewCounter creates a Counter that reports skipped lines at debug level.
// A nil logger discards everything.
func NewCounter(log logrus.FieldLogger) *Counter {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Counter{log: log}
}

// Count walks content line by line and returns the number of lines that
// name each package
func (c *Counter) Count(content []byte) Counts {
	counts := make(Counts)
	lineNo := 0
	skipped := 0

	for len(content) > 0 {
		var raw []byte
		if i := bytes.IndexByte(content, '\n'); i >= 0 {
			raw, content = content[:i], content[i+1:]
		} else {
			raw, content = content, nil
		}
		lineNo++

		_, field, ok := SplitLine(string(raw))
		if !ok {
			skipped++
			if len(raw) > 0 {
				c.log.Debugf("Skipping line %d without package list: %q", lineNo, raw)
			}
			continue
		}

		for _, name := range SplitPackages(field) {
			counts[name]++
		}
	}

	c.log.Debugf("Parsed %d lines, skipped %d, found %d packages", lineNo, skipped, len(counts))
	return counts
}

// CountFilesPerPackage is Count without logging
func CountFilesPerPackage(content []byte) Counts {
	return NewCounter(nil).Count(content)
}
