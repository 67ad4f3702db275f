// Package storeformat holds the registry of known merchant receipt layouts.
// Each entry pairs a keyword signature with merchant-specific regular
// expressions for total, tax, and item lines. Detection is first-match-wins
// in declaration order; a structurally valid generic entry always exists as
// the fallback, so selection never fails.
package storeformat

import (
	"fmt"
	"regexp"
	"strings"
)

// headerLines is how many normalized lines are inspected for a keyword match.
const headerLines = 10

// Format describes the receipt layout of one merchant family.
type Format struct {
	Name          string
	Keywords      []string
	TotalPatterns []*regexp.Regexp
	TaxPatterns   []*regexp.Regexp
	ItemPattern   *regexp.Regexp
}

// IsGeneric reports whether this is the fallback entry.
func (f Format) IsGeneric() bool {
	return f.Name == ""
}

// genericItemPattern matches "name ... price" lines: a non-numeric name
// capture followed by an optional currency mark and a trailing integer.
var genericItemPattern = regexp.MustCompile(`^([^\d¥][^¥]*?)\s*[¥]?([0-9][0-9,]*)円?$`)

// generic is the guaranteed fallback layout.
var generic = Format{
	TotalPatterns: []*regexp.Regexp{
		regexp.MustCompile(`(?:合計|総計|税込合計)\s*[:]?\s*[¥]?([0-9][0-9,]*)`),
	},
	TaxPatterns: []*regexp.Regexp{
		regexp.MustCompile(`(?:消費税|内税|外税)\s*[:]?\s*[¥]?([0-9][0-9,]*)`),
	},
	ItemPattern: genericItemPattern,
}

// registry lists known merchant layouts in priority order. Entries are data,
// not code: adding a merchant means appending one entry here or overlaying it
// from the store_formats.yaml file.
var registry = []Format{
	{
		Name:     "セブン-イレブン",
		Keywords: []string{"セブン-イレブン", "セブンイレブン", "7-eleven", "seven-eleven"},
		TotalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`合\s*計\s*[¥]?([0-9][0-9,]*)`),
		},
		TaxPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:内消費税等|消費税)\s*[¥]?([0-9][0-9,]*)`),
		},
		ItemPattern: genericItemPattern,
	},
	{
		Name:     "ファミリーマート",
		Keywords: []string{"ファミリーマート", "ファミマ", "familymart"},
		TotalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`合\s*計\s*[¥]?([0-9][0-9,]*)`),
		},
		TaxPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:内税|消費税)\s*[¥]?([0-9][0-9,]*)`),
		},
		ItemPattern: genericItemPattern,
	},
	{
		Name:     "ローソン",
		Keywords: []string{"ローソン", "lawson"},
		TotalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`合\s*計\s*[¥]?([0-9][0-9,]*)`),
		},
		TaxPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:内税|消費税)\s*[¥]?([0-9][0-9,]*)`),
		},
		ItemPattern: genericItemPattern,
	},
	{
		Name:     "イオン",
		Keywords: []string{"イオン", "aeon", "マックスバリュ"},
		TotalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:お買上げ?合計|合計)\s*[¥]?([0-9][0-9,]*)`),
		},
		TaxPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:外税|内税|消費税)\s*[¥]?([0-9][0-9,]*)`),
		},
		ItemPattern: genericItemPattern,
	},
	{
		Name:     "マツモトキヨシ",
		Keywords: []string{"マツモトキヨシ", "マツキヨ", "matsumotokiyoshi"},
		TotalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:合計|お会計)\s*[¥]?([0-9][0-9,]*)`),
		},
		TaxPatterns: []*regexp.Regexp{
			regexp.MustCompile(`消費税\s*[¥]?([0-9][0-9,]*)`),
		},
		ItemPattern: genericItemPattern,
	},
	{
		Name:     "西友",
		Keywords: []string{"西友", "seiyu"},
		TotalPatterns: []*regexp.Regexp{
			regexp.MustCompile(`合\s*計\s*[¥]?([0-9][0-9,]*)`),
		},
		ItemPattern: genericItemPattern,
	},
}

// Registry owns the ordered format list together with any user-supplied
// overlay entries. Overlays are tried before the built-in table, so a custom
// entry can shadow a built-in one.
type Registry struct {
	formats []Format
}

// NewRegistry returns a Registry over the built-in format table.
func NewRegistry() *Registry {
	return &Registry{formats: registry}
}

// NewRegistryWithOverlay returns a Registry that tries the overlay entries
// first, then the built-in table.
func NewRegistryWithOverlay(overlay []Format) *Registry {
	formats := make([]Format, 0, len(overlay)+len(registry))
	formats = append(formats, overlay...)
	formats = append(formats, registry...)
	return &Registry{formats: formats}
}

// Generic returns the fallback layout.
func (r *Registry) Generic() Format {
	return generic
}

// Detect returns the first registry entry whose keyword set matches any of
// the first ten normalized lines, or the generic fallback when none does.
func (r *Registry) Detect(lines []string) Format {
	limit := len(lines)
	if limit > headerLines {
		limit = headerLines
	}

	for _, format := range r.formats {
		for _, keyword := range format.Keywords {
			kw := strings.ToLower(keyword)
			for _, line := range lines[:limit] {
				if strings.Contains(strings.ToLower(line), kw) {
					return format
				}
			}
		}
	}
	return generic
}

// FormatConfig is the YAML form of a custom store format entry.
type FormatConfig struct {
	Name          string   `yaml:"name"`
	Keywords      []string `yaml:"keywords"`
	TotalPatterns []string `yaml:"total_patterns"`
	TaxPatterns   []string `yaml:"tax_patterns"`
	ItemPattern   string   `yaml:"item_pattern"`
}

// FormatsConfig is the structure of the store_formats.yaml file.
type FormatsConfig struct {
	Formats []FormatConfig `yaml:"store_formats"`
}

// Compile turns a YAML format entry into a usable Format. Entries without an
// item pattern inherit the generic one; entries without any total pattern are
// rejected because selection must always return a structurally valid format.
func (c FormatConfig) Compile() (Format, error) {
	if c.Name == "" {
		return Format{}, fmt.Errorf("store format entry missing name")
	}
	if len(c.TotalPatterns) == 0 {
		return Format{}, fmt.Errorf("store format %q has no total patterns", c.Name)
	}

	format := Format{Name: c.Name, Keywords: c.Keywords}
	for _, pattern := range c.TotalPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return Format{}, fmt.Errorf("store format %q: invalid total pattern %q: %w", c.Name, pattern, err)
		}
		format.TotalPatterns = append(format.TotalPatterns, re)
	}
	for _, pattern := range c.TaxPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return Format{}, fmt.Errorf("store format %q: invalid tax pattern %q: %w", c.Name, pattern, err)
		}
		format.TaxPatterns = append(format.TaxPatterns, re)
	}
	if c.ItemPattern == "" {
		format.ItemPattern = genericItemPattern
	} else {
		re, err := regexp.Compile(c.ItemPattern)
		if err != nil {
			return Format{}, fmt.Errorf("store format %q: invalid item pattern %q: %w", c.Name, c.ItemPattern, err)
		}
		format.ItemPattern = re
	}
	return format, nil
}
