package engine

import (
	"fmt"

	serrors "github.com/termsui/suicfg/internal/errors"
	"github.com/termsui/suicfg/internal/model"
)

// AddProfile appends a profile to a group, or an environment to a client
// document when Group is empty. GraphQLURL and GRPCURL are optional and
// only meaningful for primary documents.
type AddProfile struct {
	Group      string
	Name       string
	RPCURL     string
	GraphQLURL string
	GRPCURL    string
	MakeActive bool
}

func (c AddProfile) apply(doc *model.Document) (*Change, error) {
	if err := validName(c.Name); err != nil {
		return nil, err
	}
	if err := validURL(c.RPCURL); err != nil {
		return nil, err
	}

	if c.Group == "" {
		client, err := requireClient(doc)
		if err != nil {
			return nil, err
		}
		if _, err := client.FindEnv(c.Name); err == nil {
			return nil, fmt.Errorf("environment %q: %w", c.Name, serrors.ErrDuplicateName)
		}
		change := &Change{Op: "add-profile", Name: c.Name}
		env := &model.Environment{Alias: c.Name, RPC: c.RPCURL}
		if c.MakeActive {
			for _, e := range client.Envs {
				if e.Active {
					e.Active = false
					change.Demoted = e.Alias
				}
			}
			env.Active = true
		}
		client.Envs = append(client.Envs, env)
		return change, nil
	}

	for _, optional := range []string{c.GraphQLURL, c.GRPCURL} {
		if optional != "" {
			if err := validURL(optional); err != nil {
				return nil, err
			}
		}
	}
	group, err := doc.FindGroup(c.Group)
	if err != nil {
		return nil, err
	}
	if _, err := group.FindProfile(c.Name); err == nil {
		return nil, fmt.Errorf("profile %q: %w", c.Name, serrors.ErrDuplicateName)
	}

	change := &Change{Op: "add-profile", Scope: c.Group, Name: c.Name}
	profile := &model.Profile{
		Name:       c.Name,
		RPCURL:     c.RPCURL,
		GraphQLURL: c.GraphQLURL,
		GRPCURL:    c.GRPCURL,
	}
	if c.MakeActive {
		if prev := group.ActiveProfile(); prev != nil {
			prev.Active = false
			change.Demoted = prev.Name
		}
		profile.Active = true
	}
	group.Profiles = append(group.Profiles, profile)
	return change, nil
}

// EditProfileField changes one field of an existing profile or environment.
// Field is one of "name", "rpc_url", "graphql_url" or "grpc_url"; the last
// two accept an empty value to clear the endpoint and are rejected for
// client documents, which do not carry them.
type EditProfileField struct {
	Group string
	Name  string
	Field string
	Value string
}

func (c EditProfileField) apply(doc *model.Document) (*Change, error) {
	if c.Group == "" {
		client, err := requireClient(doc)
		if err != nil {
			return nil, err
		}
		env, err := client.FindEnv(c.Name)
		if err != nil {
			return nil, err
		}
		switch c.Field {
		case "name":
			if err := validName(c.Value); err != nil {
				return nil, err
			}
			if c.Value != env.Alias {
				if _, err := client.FindEnv(c.Value); err == nil {
					return nil, fmt.Errorf("environment %q: %w", c.Value, serrors.ErrDuplicateName)
				}
			}
			env.Alias = c.Value
		case "rpc_url":
			if err := validURL(c.Value); err != nil {
				return nil, err
			}
			env.RPC = c.Value
		default:
			return nil, fmt.Errorf("environments have no field %q: %w", c.Field, serrors.ErrNotFound)
		}
		return &Change{Op: "edit-profile", Name: c.Name}, nil
	}

	group, err := doc.FindGroup(c.Group)
	if err != nil {
		return nil, err
	}
	profile, err := group.FindProfile(c.Name)
	if err != nil {
		return nil, err
	}
	switch c.Field {
	case "name":
		if err := validName(c.Value); err != nil {
			return nil, err
		}
		if c.Value != profile.Name {
			if _, err := group.FindProfile(c.Value); err == nil {
				return nil, fmt.Errorf("profile %q: %w", c.Value, serrors.ErrDuplicateName)
			}
		}
		profile.Name = c.Value
	case "rpc_url":
		if err := validURL(c.Value); err != nil {
			return nil, err
		}
		profile.RPCURL = c.Value
	case "graphql_url":
		if c.Value != "" {
			if err := validURL(c.Value); err != nil {
				return nil, err
			}
		}
		profile.GraphQLURL = c.Value
	case "grpc_url":
		if c.Value != "" {
			if err := validURL(c.Value); err != nil {
				return nil, err
			}
		}
		profile.GRPCURL = c.Value
	default:
		return nil, fmt.Errorf("profiles have no field %q: %w", c.Field, serrors.ErrNotFound)
	}
	return &Change{Op: "edit-profile", Scope: c.Group, Name: c.Name}, nil
}

// SetProfileActive makes the named profile or environment active, clearing
// the previous holder in the same operation.
type SetProfileActive struct {
	Group string
	Name  string
}

func (c SetProfileActive) apply(doc *model.Document) (*Change, error) {
	change := &Change{Op: "set-profile-active", Scope: c.Group, Name: c.Name}

	if c.Group == "" {
		client, err := requireClient(doc)
		if err != nil {
			return nil, err
		}
		env, err := client.FindEnv(c.Name)
		if err != nil {
			return nil, err
		}
		for _, e := range client.Envs {
			if e.Active && e != env {
				e.Active = false
				change.Demoted = e.Alias
			}
		}
		env.Active = true
		return change, nil
	}

	group, err := doc.FindGroup(c.Group)
	if err != nil {
		return nil, err
	}
	profile, err := group.FindProfile(c.Name)
	if err != nil {
		return nil, err
	}
	if prev := group.ActiveProfile(); prev != nil && prev != profile {
		prev.Active = false
		change.Demoted = prev.Name
	}
	profile.Active = true
	return change, nil
}

// DeleteProfile removes a profile or environment. A group must keep at
// least one profile; a client document's environment list may be emptied.
type DeleteProfile struct {
	Group string
	Name  string
}

func (c DeleteProfile) apply(doc *model.Document) (*Change, error) {
	change := &Change{Op: "delete-profile", Scope: c.Group, Name: c.Name}

	if c.Group == "" {
		client, err := requireClient(doc)
		if err != nil {
			return nil, err
		}
		env, err := client.FindEnv(c.Name)
		if err != nil {
			return nil, err
		}
		for i, e := range client.Envs {
			if e == env {
				client.Envs = append(client.Envs[:i], client.Envs[i+1:]...)
				break
			}
		}
		if env.Active && len(client.Envs) > 0 {
			change.Promoted = client.Envs[0].Alias
		}
		return change, nil
	}

	group, err := doc.FindGroup(c.Group)
	if err != nil {
		return nil, err
	}
	profile, err := group.FindProfile(c.Name)
	if err != nil {
		return nil, err
	}
	if len(group.Profiles) == 1 {
		return nil, fmt.Errorf("group %q would lose its last profile: %w", c.Group, serrors.ErrWouldEmptyRequiredCollection)
	}

	for i, p := range group.Profiles {
		if p == profile {
			group.Profiles = append(group.Profiles[:i], group.Profiles[i+1:]...)
			break
		}
	}
	if profile.Active {
		change.Promoted = group.Profiles[0].Name
	}
	return change, nil
}
