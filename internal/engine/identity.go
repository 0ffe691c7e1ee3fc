package engine

import (
	"fmt"

	serrors "github.com/termsui/suicfg/internal/errors"
	"github.com/termsui/suicfg/internal/keygen"
	"github.com/termsui/suicfg/internal/model"
)

// AddIdentity generates a keypair for Curve and inserts the resulting
// identity (or keystore entry, when Scope is empty) under Alias. If key
// generation fails nothing is inserted.
type AddIdentity struct {
	Scope      string
	Alias      string
	Curve      model.Curve
	MakeActive bool

	// Generator overrides the entropy source, for tests. Nil selects the
	// default crypto/rand backed generator.
	Generator *keygen.Generator
}

func (c AddIdentity) apply(doc *model.Document) (*Change, error) {
	if err := validAlias(c.Alias); err != nil {
		return nil, err
	}
	gen := c.Generator
	if gen == nil {
		gen = keygen.New(nil)
	}

	if c.Scope == "" {
		client, err := requireClient(doc)
		if err != nil {
			return nil, err
		}
		if _, err := client.FindKey(c.Alias); err == nil {
			return nil, fmt.Errorf("key %q: %w", c.Alias, serrors.ErrDuplicateName)
		}
		km, err := gen.Generate(c.Curve)
		if err != nil {
			return nil, err
		}
		change := &Change{Op: "add-identity", Name: c.Alias}
		key := &model.Key{Alias: c.Alias, PublicKey: km.Keystring()}
		if c.MakeActive {
			for _, k := range client.Keys {
				if k.Active {
					k.Active = false
					change.Demoted = k.Alias
				}
			}
			key.Active = true
		}
		client.Keys = append(client.Keys, key)
		return change, nil
	}

	group, err := doc.FindGroup(c.Scope)
	if err != nil {
		return nil, err
	}
	if _, err := group.FindIdentity(c.Alias); err == nil {
		return nil, fmt.Errorf("identity %q: %w", c.Alias, serrors.ErrDuplicateName)
	}
	km, err := gen.Generate(c.Curve)
	if err != nil {
		return nil, err
	}

	change := &Change{Op: "add-identity", Scope: c.Scope, Name: c.Alias}
	identity := &model.Identity{
		Alias:     c.Alias,
		PublicKey: km.Keystring(),
		Curve:     km.Curve,
		Address:   km.Address,
	}
	if c.MakeActive {
		if prev := group.ActiveIdentity(); prev != nil {
			prev.Active = false
			change.Demoted = prev.Alias
		}
		identity.Active = true
	}
	group.Identities = append(group.Identities, identity)
	return change, nil
}

// EditIdentityAlias renames an identity or keystore entry. The key
// material and address are untouched; renaming the active identity keeps
// it active.
type EditIdentityAlias struct {
	Scope string
	Old   string
	New   string
}

func (c EditIdentityAlias) apply(doc *model.Document) (*Change, error) {
	if err := validAlias(c.New); err != nil {
		return nil, err
	}

	if c.Scope == "" {
		client, err := requireClient(doc)
		if err != nil {
			return nil, err
		}
		key, err := client.FindKey(c.Old)
		if err != nil {
			return nil, err
		}
		if c.New != c.Old {
			if _, err := client.FindKey(c.New); err == nil {
				return nil, fmt.Errorf("key %q: %w", c.New, serrors.ErrDuplicateName)
			}
		}
		key.Alias = c.New
		return &Change{Op: "rename-identity", Name: c.New}, nil
	}

	group, err := doc.FindGroup(c.Scope)
	if err != nil {
		return nil, err
	}
	identity, err := group.FindIdentity(c.Old)
	if err != nil {
		return nil, err
	}
	if c.New != c.Old {
		if _, err := group.FindIdentity(c.New); err == nil {
			return nil, fmt.Errorf("identity %q: %w", c.New, serrors.ErrDuplicateName)
		}
	}
	identity.Alias = c.New
	return &Change{Op: "rename-identity", Scope: c.Scope, Name: c.New}, nil
}

// SetIdentityActive makes the named identity or keystore entry active,
// clearing the previous holder in the same operation.
type SetIdentityActive struct {
	Scope string
	Alias string
}

func (c SetIdentityActive) apply(doc *model.Document) (*Change, error) {
	change := &Change{Op: "set-identity-active", Scope: c.Scope, Name: c.Alias}

	if c.Scope == "" {
		client, err := requireClient(doc)
		if err != nil {
			return nil, err
		}
		key, err := client.FindKey(c.Alias)
		if err != nil {
			return nil, err
		}
		for _, k := range client.Keys {
			if k.Active && k != key {
				k.Active = false
				change.Demoted = k.Alias
			}
		}
		key.Active = true
		return change, nil
	}

	group, err := doc.FindGroup(c.Scope)
	if err != nil {
		return nil, err
	}
	identity, err := group.FindIdentity(c.Alias)
	if err != nil {
		return nil, err
	}
	if prev := group.ActiveIdentity(); prev != nil && prev != identity {
		prev.Active = false
		change.Demoted = prev.Alias
	}
	identity.Active = true
	return change, nil
}

// DeleteIdentity removes an identity or keystore entry. A group must keep
// at least one identity; a client keystore may be emptied.
type DeleteIdentity struct {
	Scope string
	Alias string
}

func (c DeleteIdentity) apply(doc *model.Document) (*Change, error) {
	change := &Change{Op: "delete-identity", Scope: c.Scope, Name: c.Alias}

	if c.Scope == "" {
		client, err := requireClient(doc)
		if err != nil {
			return nil, err
		}
		key, err := client.FindKey(c.Alias)
		if err != nil {
			return nil, err
		}
		for i, k := range client.Keys {
			if k == key {
				client.Keys = append(client.Keys[:i], client.Keys[i+1:]...)
				break
			}
		}
		if key.Active && len(client.Keys) > 0 {
			change.Promoted = client.Keys[0].Alias
		}
		return change, nil
	}

	group, err := doc.FindGroup(c.Scope)
	if err != nil {
		return nil, err
	}
	identity, err := group.FindIdentity(c.Alias)
	if err != nil {
		return nil, err
	}
	if len(group.Identities) == 1 {
		return nil, fmt.Errorf("group %q would lose its last identity: %w", c.Scope, serrors.ErrWouldEmptyRequiredCollection)
	}

	for i, id := range group.Identities {
		if id == identity {
			group.Identities = append(group.Identities[:i], group.Identities[i+1:]...)
			break
		}
	}
	if identity.Active {
		change.Promoted = group.Identities[0].Alias
	}
	return change, nil
}
