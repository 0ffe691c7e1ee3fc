package format

import (
	"fmt"

	"gopkg.in/yaml.v3"

	serrors "github.com/termsui/suicfg/internal/errors"
	"github.com/termsui/suicfg/internal/model"
)

// clientYAML reads and writes the client tool's client.yaml schema: flat
// environments and keystore entries, no group nesting. Both lists may be
// absent or empty; the client tool tolerates that.
type clientYAML struct{}

type envWire struct {
	Alias  string `yaml:"alias"`
	RPC    string `yaml:"rpc"`
	Active bool   `yaml:"active"`
}

type keyWire struct {
	Alias     string `yaml:"alias"`
	PublicKey string `yaml:"public_key"`
	Active    bool   `yaml:"active"`
}

func (clientYAML) Format() model.Format { return model.FormatClientYAML }

func (clientYAML) Parse(data []byte) (*model.Document, error) {
	var file struct {
		Envs     []envWire `yaml:"envs"`
		Keystore []keyWire `yaml:"keystore"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing YAML: %v: %w", err, serrors.ErrMalformedDocument)
	}

	client := &model.ClientConfig{Extra: make(map[string]interface{})}
	for _, ew := range file.Envs {
		if ew.Alias == "" || ew.RPC == "" {
			return nil, fmt.Errorf("environment missing \"alias\" or \"rpc\": %w", serrors.ErrMalformedDocument)
		}
		client.Envs = append(client.Envs, &model.Environment{
			Alias:  ew.Alias,
			RPC:    ew.RPC,
			Active: ew.Active,
		})
	}
	for _, kw := range file.Keystore {
		if kw.Alias == "" || kw.PublicKey == "" {
			return nil, fmt.Errorf("keystore entry missing \"alias\" or \"public_key\": %w", serrors.ErrMalformedDocument)
		}
		client.Keys = append(client.Keys, &model.Key{
			Alias:     kw.Alias,
			PublicKey: kw.PublicKey,
			Active:    kw.Active,
		})
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %v: %w", err, serrors.ErrMalformedDocument)
	}
	delete(raw, "envs")
	delete(raw, "keystore")
	for key, value := range raw {
		client.Extra[key] = value
	}

	doc := &model.Document{Format: model.FormatClientYAML, Client: client}
	doc.Normalize()
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, serrors.ErrMalformedDocument)
	}
	return doc, nil
}

func (clientYAML) Serialize(doc *model.Document) ([]byte, error) {
	if doc.Client == nil {
		return nil, fmt.Errorf("document carries no client content: %w", serrors.ErrMalformedDocument)
	}

	envs := make([]envWire, 0, len(doc.Client.Envs))
	for _, e := range doc.Client.Envs {
		envs = append(envs, envWire{Alias: e.Alias, RPC: e.RPC, Active: e.Active})
	}
	keys := make([]keyWire, 0, len(doc.Client.Keys))
	for _, k := range doc.Client.Keys {
		keys = append(keys, keyWire{Alias: k.Alias, PublicKey: k.PublicKey, Active: k.Active})
	}

	out := make(map[string]interface{}, len(doc.Client.Extra)+2)
	for key, value := range doc.Client.Extra {
		out[key] = value
	}
	out["envs"] = envs
	out["keystore"] = keys

	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("serializing YAML: %w", err)
	}
	return data, nil
}
