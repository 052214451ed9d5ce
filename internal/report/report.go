package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/keyfind/internal/jsonvalue"
)

// Format determines how summaries are printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts the format names used on the command line.
func ParseFormat(input string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(input))) {
	case "", FormatText:
		return FormatText, true
	case FormatJSON:
		return FormatJSON, true
	case FormatYAML, "yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// Entry is one rendered match.
type Entry struct {
	Path  string          `json:"path" yaml:"path"`
	Value jsonvalue.Value `json:"value" yaml:"value"`
}

// String renders "<path> = <value>".
func (e Entry) String() string {
	return e.Path + " = " + e.Value.String()
}

// FileResult is the outcome of searching one document.
type FileResult struct {
	Source  string  `json:"source" yaml:"source"`
	Count   int     `json:"count" yaml:"count"`
	Matches []Entry `json:"matches" yaml:"matches"`
	Error   string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the document could not be searched.
func (r FileResult) Failed() bool {
	return r.Error != ""
}

// Summary aggregates outcomes across every searched document.
type Summary struct {
	ID    string       `json:"id" yaml:"id"`
	Keys  []string     `json:"keys" yaml:"keys"`
	Files []FileResult `json:"files" yaml:"files"`
}

// Add records one file result into the summary.
func (s *Summary) Add(result FileResult) {
	if result.Matches == nil {
		result.Matches = []Entry{}
	}
	result.Count = len(result.Matches)
	s.Files = append(s.Files, result)
}

// HasErrors reports whether any document failed.
func (s Summary) HasErrors() bool {
	for _, file := range s.Files {
		if file.Failed() {
			return true
		}
	}
	return false
}

// Total returns the number of matches across all documents.
func (s Summary) Total() int {
	total := 0
	for _, file := range s.Files {
		total += file.Count
	}
	return total
}

// Write prints the summary in the requested format.
func (s Summary) Write(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(s)
	case FormatYAML:
		payload, err := yaml.Marshal(s)
		if err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		_, err = w.Write(payload)
		return err
	case FormatText, "":
		return s.writeText(w)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func (s Summary) writeText(w io.Writer) error {
	writef := func(format string, args ...any) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}

	banners := len(s.Files) > 1
	for i, file := range s.Files {
		if banners {
			if i > 0 {
				if err := writef("\n"); err != nil {
					return err
				}
			}
			if err := writef("==> %s <==\n", file.Source); err != nil {
				return err
			}
		}

		if file.Failed() {
			if err := writef("An error occurred: %s\n", file.Error); err != nil {
				return err
			}
			continue
		}

		if len(file.Matches) == 0 {
			if err := writef("No matches found\n"); err != nil {
				return err
			}
			continue
		}

		noun := "matches"
		if len(file.Matches) == 1 {
			noun = "match"
		}
		if err := writef("Found %d %s:\n\n", len(file.Matches), noun); err != nil {
			return err
		}
		for n, entry := range file.Matches {
			if err := writef("%d. %s\n", n+1, entry); err != nil {
				return err
			}
		}
	}

	return nil
}
