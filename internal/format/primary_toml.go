package format

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	serrors "github.com/termsui/suicfg/internal/errors"
	"github.com/termsui/suicfg/internal/model"
)

// primaryTOML reads and writes the PysuiConfig.toml encoding. Same logical
// schema as the JSON variant; the encoding is a property of the opened
// file, not of the model.
type primaryTOML struct{}

func (primaryTOML) Format() model.Format { return model.FormatPrimaryTOML }

func (primaryTOML) Parse(data []byte) (*model.Document, error) {
	var file struct {
		Version string      `toml:"version"`
		Groups  []groupWire `toml:"groups"`
	}
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("parsing TOML: %v: %w", err, serrors.ErrMalformedDocument)
	}
	if err := checkVersion(file.Version); err != nil {
		return nil, err
	}
	if file.Groups == nil {
		return nil, fmt.Errorf("missing required key \"groups\": %w", serrors.ErrMalformedDocument)
	}
	groups, err := groupsFromWire(file.Groups)
	if err != nil {
		return nil, err
	}

	// Second decode into a plain map to pick up the top-level keys the
	// model does not understand.
	var raw map[string]interface{}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("parsing TOML: %v: %w", err, serrors.ErrMalformedDocument)
	}
	delete(raw, "version")
	delete(raw, "groups")

	primary := &model.PrimaryConfig{
		Version: file.Version,
		Groups:  groups,
		Extra:   raw,
	}
	return finishPrimary(model.FormatPrimaryTOML, primary)
}

func (primaryTOML) Serialize(doc *model.Document) ([]byte, error) {
	if doc.Primary == nil {
		return nil, fmt.Errorf("document carries no primary content: %w", serrors.ErrMalformedDocument)
	}

	out := make(map[string]interface{}, len(doc.Primary.Extra)+2)
	for key, value := range doc.Primary.Extra {
		out[key] = value
	}
	if doc.Primary.Version != "" {
		out["version"] = doc.Primary.Version
	}
	out["groups"] = groupsToWire(doc.Primary.Groups)

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return nil, fmt.Errorf("serializing TOML: %w", err)
	}
	return buf.Bytes(), nil
}
