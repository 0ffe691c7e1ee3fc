package format

import (
	"fmt"
	"path/filepath"
	"strings"

	serrors "github.com/termsui/suicfg/internal/errors"
	"github.com/termsui/suicfg/internal/model"
)

// SchemaVersion is the only primary schema-version marker this editor
// understands. Files without a marker are accepted as this version.
const SchemaVersion = "1.0"

// Adapter parses one on-disk encoding into the canonical model and
// serializes the model back to the same encoding.
type Adapter interface {
	Format() model.Format
	Parse(data []byte) (*model.Document, error)
	Serialize(doc *model.Document) ([]byte, error)
}

// ForFormat returns the adapter for a document format.
func ForFormat(f model.Format) (Adapter, error) {
	switch f {
	case model.FormatPrimaryJSON:
		return primaryJSON{}, nil
	case model.FormatPrimaryTOML:
		return primaryTOML{}, nil
	case model.FormatClientYAML:
		return clientYAML{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: %w", f, serrors.ErrMalformedDocument)
	}
}

// ForPath picks the adapter from a file extension: .json and .toml are the
// primary schema, .yaml and .yml the client schema.
func ForPath(path string) (Adapter, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return primaryJSON{}, nil
	case ".toml":
		return primaryTOML{}, nil
	case ".yaml", ".yml":
		return clientYAML{}, nil
	default:
		return nil, fmt.Errorf("cannot infer configuration format from %q: %w", path, serrors.ErrMalformedDocument)
	}
}

// checkVersion rejects unrecognized schema-version markers.
func checkVersion(version string) error {
	if version != "" && version != SchemaVersion {
		return fmt.Errorf("schema version %q: %w", version, serrors.ErrUnsupportedVersion)
	}
	return nil
}
