package descriptor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ruboto/rubotogen/internal/errors"
)

// Format selects the decoder for a descriptor document
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension; anything but .yaml/.yml is api.xml
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatXML
	}
}

// Load reads and validates the descriptor at path
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err).
			WithSuggestion("Point --api at the platform api.xml")
	}
	return Parse(path, FormatFor(path), data)
}

// Parse decodes an in-memory descriptor; source is only used in error messages
func Parse(source string, format Format, data []byte) (*Document, error) {
	switch format {
	case FormatYAML:
		return parseYAML(source, data)
	case FormatXML:
		return parseXML(source, data)
	default:
		return nil, errors.DescriptorError(errors.SourceLocation{File: source}, "unknown descriptor format %q", format)
	}
}
