// Package controller owns the currently-open document. It orchestrates
// load, save and save-as through the format adapters and hands the document
// to the mutation engine and edit sessions; it is the only object the
// presentation layer talks to. Exactly one document is open at a time;
// loading or creating a new one discards the previous in-memory state.
package controller

import (
	"fmt"
	"os"

	"github.com/termsui/suicfg/internal/format"
	"github.com/termsui/suicfg/internal/keygen"
	"github.com/termsui/suicfg/internal/model"

	serrors "github.com/termsui/suicfg/internal/errors"
)

// Defaults seeded into a freshly created document.
const (
	DefaultGroup   = "user"
	DefaultProfile = "devnet"
	DefaultRPCURL  = "https://fullnode.devnet.sui.io:443"
	DefaultAlias   = "primary"
)

// Controller holds the open document and its originating path.
type Controller struct {
	gen *keygen.Generator
	doc *model.Document
}

// New returns a controller with no document open.
func New() *Controller {
	return &Controller{gen: keygen.New(nil)}
}

// NewWithGenerator overrides the key generator, for tests.
func NewWithGenerator(gen *keygen.Generator) *Controller {
	return &Controller{gen: gen}
}

// Document returns the currently open document, nil when none is open.
func (c *Controller) Document() *model.Document {
	return c.doc
}

// NewDocument creates and opens a fresh default document for the format:
// one group with one profile and one generated ed25519 identity for the
// primary schema, one environment and one keystore entry for the client
// schema, everything active. The document has no path until the first
// save-as.
func (c *Controller) NewDocument(f model.Format) (*model.Document, error) {
	km, err := c.gen.Generate(model.CurveEd25519)
	if err != nil {
		return nil, fmt.Errorf("seeding default identity: %w", err)
	}

	var doc *model.Document
	switch {
	case f.IsPrimary():
		doc = &model.Document{
			Format: f,
			Primary: &model.PrimaryConfig{
				Version: format.SchemaVersion,
				Groups: []*model.Group{
					{
						Name:   DefaultGroup,
						Active: true,
						Profiles: []*model.Profile{
							{Name: DefaultProfile, RPCURL: DefaultRPCURL, Active: true},
						},
						Identities: []*model.Identity{
							{
								Alias:     DefaultAlias,
								PublicKey: km.Keystring(),
								Curve:     km.Curve,
								Address:   km.Address,
								Active:    true,
							},
						},
					},
				},
				Extra: make(map[string]interface{}),
			},
		}
	case f == model.FormatClientYAML:
		doc = &model.Document{
			Format: f,
			Client: &model.ClientConfig{
				Envs: []*model.Environment{
					{Alias: DefaultProfile, RPC: DefaultRPCURL, Active: true},
				},
				Keys: []*model.Key{
					{Alias: DefaultAlias, PublicKey: km.Keystring(), Active: true},
				},
				Extra: make(map[string]interface{}),
			},
		}
	default:
		return nil, fmt.Errorf("unknown format %q: %w", f, serrors.ErrMalformedDocument)
	}

	c.doc = doc
	return doc, nil
}

// Load opens the file at path, dispatching to the adapter matching its
// extension. It always re-parses from disk; the file may have been changed
// by another tool since it was last seen.
func (c *Controller) Load(path string) (*model.Document, error) {
	adapter, err := format.ForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := adapter.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	doc.Path = path
	c.doc = doc
	return doc, nil
}

// Save serializes a snapshot of the open document to its tracked path.
// A document that has never been saved has no path; use SaveAs.
func (c *Controller) Save() error {
	if c.doc == nil {
		return fmt.Errorf("no document open: %w", serrors.ErrNotFound)
	}
	if c.doc.Path == "" {
		return serrors.ErrNoPathSet
	}
	return c.write(c.doc.Path)
}

// SaveAs writes the open document to a new path, leaving any previous file
// untouched. The tracked path is updated only after a successful write,
// and the document keeps its format regardless of the new extension.
func (c *Controller) SaveAs(path string) error {
	if c.doc == nil {
		return fmt.Errorf("no document open: %w", serrors.ErrNotFound)
	}
	if err := c.write(path); err != nil {
		return err
	}
	c.doc.Path = path
	return nil
}

func (c *Controller) write(path string) error {
	adapter, err := format.ForFormat(c.doc.Format)
	if err != nil {
		return err
	}
	data, err := adapter.Serialize(c.doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
