package model

import (
	"fmt"

	serrors "github.com/termsui/suicfg/internal/errors"
)

// FindGroup returns the named group of a primary document.
func (d *Document) FindGroup(name string) (*Group, error) {
	if d.Primary == nil {
		return nil, fmt.Errorf("document has no groups: %w", serrors.ErrNotFound)
	}
	for _, g := range d.Primary.Groups {
		if g.Name == name {
			return g, nil
		}
	}
	return nil, fmt.Errorf("group %q: %w", name, serrors.ErrNotFound)
}

// FindProfile returns the named profile within a group.
func (g *Group) FindProfile(name string) (*Profile, error) {
	for _, p := range g.Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("profile %q in group %q: %w", name, g.Name, serrors.ErrNotFound)
}

// FindIdentity returns the identity with the given alias within a group.
func (g *Group) FindIdentity(alias string) (*Identity, error) {
	for _, id := range g.Identities {
		if id.Alias == alias {
			return id, nil
		}
	}
	return nil, fmt.Errorf("identity %q in group %q: %w", alias, g.Name, serrors.ErrNotFound)
}

// FindEnv returns the named environment of a client document.
func (c *ClientConfig) FindEnv(alias string) (*Environment, error) {
	for _, e := range c.Envs {
		if e.Alias == alias {
			return e, nil
		}
	}
	return nil, fmt.Errorf("environment %q: %w", alias, serrors.ErrNotFound)
}

// FindKey returns the keystore entry with the given alias of a client document.
func (c *ClientConfig) FindKey(alias string) (*Key, error) {
	for _, k := range c.Keys {
		if k.Alias == alias {
			return k, nil
		}
	}
	return nil, fmt.Errorf("key %q: %w", alias, serrors.ErrNotFound)
}

// ActiveGroup returns the active group of a primary document, or nil when
// the document has no groups.
func (d *Document) ActiveGroup() *Group {
	if d.Primary == nil {
		return nil
	}
	for _, g := range d.Primary.Groups {
		if g.Active {
			return g
		}
	}
	return nil
}

// ActiveProfile returns the group's active profile, or nil when the group
// has no profiles.
func (g *Group) ActiveProfile() *Profile {
	for _, p := range g.Profiles {
		if p.Active {
			return p
		}
	}
	return nil
}

// ActiveIdentity returns the group's active identity, or nil when the group
// has no identities.
func (g *Group) ActiveIdentity() *Identity {
	for _, id := range g.Identities {
		if id.Active {
			return id
		}
	}
	return nil
}

// GroupNames returns the group names of a primary document in stored order.
func (d *Document) GroupNames() []string {
	if d.Primary == nil {
		return nil
	}
	names := make([]string, 0, len(d.Primary.Groups))
	for _, g := range d.Primary.Groups {
		names = append(names, g.Name)
	}
	return names
}
