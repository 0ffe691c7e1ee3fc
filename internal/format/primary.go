package format

import (
	"fmt"

	serrors "github.com/termsui/suicfg/internal/errors"
	"github.com/termsui/suicfg/internal/model"
)

// Wire structs shared by the JSON and TOML encodings of the primary
// schema. The key names must match the external SDK byte-for-byte.
type groupWire struct {
	Name       string         `json:"name" toml:"name"`
	Active     bool           `json:"active" toml:"active"`
	Profiles   []profileWire  `json:"profiles" toml:"profiles"`
	Identities []identityWire `json:"identities" toml:"identities"`
}

type profileWire struct {
	Name       string `json:"name" toml:"name"`
	Active     bool   `json:"active" toml:"active"`
	RPCURL     string `json:"rpc_url" toml:"rpc_url"`
	GraphQLURL string `json:"graphql_url,omitempty" toml:"graphql_url,omitempty"`
	GRPCURL    string `json:"grpc_url,omitempty" toml:"grpc_url,omitempty"`
}

type identityWire struct {
	Alias     string `json:"alias" toml:"alias"`
	Active    bool   `json:"active" toml:"active"`
	PublicKey string `json:"public_key" toml:"public_key"`
	Curve     string `json:"curve" toml:"curve"`
	Address   string `json:"address" toml:"address"`
}

// groupsFromWire converts parsed groups into the model, checking required
// keys. Missing names, URLs or key material make the document malformed.
func groupsFromWire(wires []groupWire) ([]*model.Group, error) {
	groups := make([]*model.Group, 0, len(wires))
	for _, gw := range wires {
		if gw.Name == "" {
			return nil, fmt.Errorf("group missing required key \"name\": %w", serrors.ErrMalformedDocument)
		}
		group := &model.Group{Name: gw.Name, Active: gw.Active}
		for _, pw := range gw.Profiles {
			if pw.Name == "" || pw.RPCURL == "" {
				return nil, fmt.Errorf("profile in group %q missing \"name\" or \"rpc_url\": %w", gw.Name, serrors.ErrMalformedDocument)
			}
			group.Profiles = append(group.Profiles, &model.Profile{
				Name:       pw.Name,
				RPCURL:     pw.RPCURL,
				GraphQLURL: pw.GraphQLURL,
				GRPCURL:    pw.GRPCURL,
				Active:     pw.Active,
			})
		}
		for _, iw := range gw.Identities {
			if iw.Alias == "" || iw.PublicKey == "" {
				return nil, fmt.Errorf("identity in group %q missing \"alias\" or \"public_key\": %w", gw.Name, serrors.ErrMalformedDocument)
			}
			group.Identities = append(group.Identities, &model.Identity{
				Alias:     iw.Alias,
				PublicKey: iw.PublicKey,
				Curve:     model.Curve(iw.Curve),
				Address:   iw.Address,
				Active:    iw.Active,
			})
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func groupsToWire(groups []*model.Group) []groupWire {
	wires := make([]groupWire, 0, len(groups))
	for _, g := range groups {
		gw := groupWire{
			Name:       g.Name,
			Active:     g.Active,
			Profiles:   make([]profileWire, 0, len(g.Profiles)),
			Identities: make([]identityWire, 0, len(g.Identities)),
		}
		for _, p := range g.Profiles {
			gw.Profiles = append(gw.Profiles, profileWire{
				Name:       p.Name,
				Active:     p.Active,
				RPCURL:     p.RPCURL,
				GraphQLURL: p.GraphQLURL,
				GRPCURL:    p.GRPCURL,
			})
		}
		for _, id := range g.Identities {
			gw.Identities = append(gw.Identities, identityWire{
				Alias:     id.Alias,
				Active:    id.Active,
				PublicKey: id.PublicKey,
				Curve:     string(id.Curve),
				Address:   id.Address,
			})
		}
		wires = append(wires, gw)
	}
	return wires
}

// finishPrimary normalizes active flags and validates structural
// invariants after a parse. A document that fails validation here was
// hand-edited into an inconsistent state and is reported as malformed.
func finishPrimary(f model.Format, primary *model.PrimaryConfig) (*model.Document, error) {
	doc := &model.Document{Format: f, Primary: primary}
	doc.Normalize()
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, serrors.ErrMalformedDocument)
	}
	return doc, nil
}
