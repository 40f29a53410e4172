package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mpgo/mortgage-planner/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(result *domain.PlanResult) ([]byte, error)
	// Name returns a short identifier for lookup and logging.
	Name() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
	JSONFormatter{},
	HTMLFormatter{},
	PDFFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":         "console",
	"txt":          "console",
	"csv-summary":  "csv",
	"csv-detailed": "detailed-csv",
	"html-report":  "html",
	"json-pretty":  "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// GetFormatterByName fetches a registered formatter, or nil.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames returns the canonical formatter names, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// extensions maps formatter names to file extensions where they differ.
var extensions = map[string]string{
	"console":      "txt",
	"detailed-csv": "csv",
}

// WriteFormatted runs a formatter and writes its output to a timestamped
// file in dir (the working directory when dir is empty), returning the path.
func WriteFormatted(f Formatter, result *domain.PlanResult, dir string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", err
	}
	ext := f.Name()
	if e, ok := extensions[f.Name()]; ok {
		ext = e
	}
	filename := fmt.Sprintf("mortgage_plan_%s.%s", time.Now().Format("20060102_150405"), ext)
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// GenerateReport formats a plan result in the named format and writes it out.
func GenerateReport(result *domain.PlanResult, format, dir string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "))
	}
	return WriteFormatted(f, result, dir)
}
