package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/roach88/gildedrose/internal/shop"
)

//go:embed schema.cue
var schemaSource string

// Format is the encoding of a fixture file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
)

// Fixture is the document shape shared by both formats.
type Fixture struct {
	Items []*shop.Item `yaml:"items" json:"items"`
}

// FormatOf picks a format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	default:
		return "", &FixtureError{
			Code:    ErrCodeFormat,
			Message: fmt.Sprintf("unsupported fixture extension %q (want .yaml, .yml or .cue)", filepath.Ext(path)),
		}
	}
}

// Load reads, parses and validates a fixture file.
func Load(path string) ([]*shop.Item, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FixtureError{Code: ErrCodeRead, Message: fmt.Sprintf("failed to read fixture: %v", err)}
	}

	return Parse(data, format, path)
}

// Parse decodes a fixture and validates it against the inventory schema.
// filename is only used in error positions.
func Parse(data []byte, format Format, filename string) ([]*shop.Item, error) {
	var (
		fixture *Fixture
		err     error
	)
	switch format {
	case FormatYAML:
		fixture, err = parseYAML(data)
	case FormatCUE:
		fixture, err = parseCUE(data, filename)
	default:
		return nil, &FixtureError{Code: ErrCodeFormat, Message: fmt.Sprintf("unknown format %q", format)}
	}
	if err != nil {
		return nil, err
	}

	for _, it := range fixture.Items {
		if it == nil {
			return nil, &FixtureError{Code: ErrCodeParse, Message: "items must not contain null entries"}
		}
		it.Name = norm.NFC.String(it.Name)
	}

	if err := Validate(fixture.Items); err != nil {
		return nil, err
	}
	return fixture.Items, nil
}

func parseYAML(data []byte) (*Fixture, error) {
	var fixture Fixture
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&fixture); err != nil {
		return nil, &FixtureError{Code: ErrCodeParse, Message: fmt.Sprintf("failed to parse YAML: %v", err)}
	}
	return &fixture, nil
}

func parseCUE(data []byte, filename string) (*Fixture, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, formatCUEError(ErrCodeParse, err)
	}

	var fixture Fixture
	if err := value.Decode(&fixture); err != nil {
		return nil, formatCUEError(ErrCodeParse, err)
	}
	return &fixture, nil
}

// Validate checks items against the embedded inventory schema.
func Validate(items []*shop.Item) error {
	if len(items) == 0 {
		return &FixtureError{Code: ErrCodeEmpty, Message: "fixture has no items"}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return formatCUEError(ErrCodeSchemaBuild, err)
	}

	doc := ctx.Encode(Fixture{Items: items})
	if err := doc.Err(); err != nil {
		return formatCUEError(ErrCodeSchema, err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Inventory")).Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(ErrCodeSchema, err)
	}
	return nil
}
