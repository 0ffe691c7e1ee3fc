package format

import (
	"encoding/json"
	"fmt"

	serrors "github.com/termsui/suicfg/internal/errors"
	"github.com/termsui/suicfg/internal/model"
)

// primaryJSON reads and writes the PysuiConfig.json encoding.
type primaryJSON struct{}

func (primaryJSON) Format() model.Format { return model.FormatPrimaryJSON }

func (primaryJSON) Parse(data []byte) (*model.Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing JSON: %v: %w", err, serrors.ErrMalformedDocument)
	}

	primary := &model.PrimaryConfig{Extra: make(map[string]interface{})}

	if v, ok := raw["version"]; ok {
		if err := json.Unmarshal(v, &primary.Version); err != nil {
			return nil, fmt.Errorf("key \"version\": %v: %w", err, serrors.ErrMalformedDocument)
		}
		if err := checkVersion(primary.Version); err != nil {
			return nil, err
		}
	}

	rawGroups, ok := raw["groups"]
	if !ok {
		return nil, fmt.Errorf("missing required key \"groups\": %w", serrors.ErrMalformedDocument)
	}
	var wires []groupWire
	if err := json.Unmarshal(rawGroups, &wires); err != nil {
		return nil, fmt.Errorf("key \"groups\": %v: %w", err, serrors.ErrMalformedDocument)
	}
	groups, err := groupsFromWire(wires)
	if err != nil {
		return nil, err
	}
	primary.Groups = groups

	for key, value := range raw {
		if key == "version" || key == "groups" {
			continue
		}
		var decoded interface{}
		if err := json.Unmarshal(value, &decoded); err != nil {
			return nil, fmt.Errorf("key %q: %v: %w", key, err, serrors.ErrMalformedDocument)
		}
		primary.Extra[key] = decoded
	}

	return finishPrimary(model.FormatPrimaryJSON, primary)
}

func (primaryJSON) Serialize(doc *model.Document) ([]byte, error) {
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

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing JSON: %w", err)
	}
	return append(data, '\n'), nil
}
