package model

import (
	"fmt"

	"go.uber.org/multierr"

	serrors "github.com/termsui/suicfg/internal/errors"
)

// Validate checks the document-wide structural invariants: names and
// aliases unique within their scope, and at most one active member per
// sibling collection. All violations are reported, combined with multierr,
// so a caller can show the full damage of a hand-edited file at once.
//
// Validate does not check the non-emptiness rules; those only constrain
// user-initiated deletes, not documents as found on disk.
func (d *Document) Validate() error {
	var errs error
	switch {
	case d.Primary != nil:
		errs = multierr.Append(errs, checkUnique("group", groupNames(d.Primary.Groups)))
		errs = multierr.Append(errs, checkSingleActive("groups", activeCount(len(d.Primary.Groups), func(i int) bool { return d.Primary.Groups[i].Active })))
		for _, g := range d.Primary.Groups {
			errs = multierr.Append(errs, g.validate())
		}
	case d.Client != nil:
		errs = multierr.Append(errs, checkUnique("environment", envAliases(d.Client.Envs)))
		errs = multierr.Append(errs, checkUnique("key", keyAliases(d.Client.Keys)))
		errs = multierr.Append(errs, checkSingleActive("environments", activeCount(len(d.Client.Envs), func(i int) bool { return d.Client.Envs[i].Active })))
		errs = multierr.Append(errs, checkSingleActive("keystore", activeCount(len(d.Client.Keys), func(i int) bool { return d.Client.Keys[i].Active })))
	default:
		errs = fmt.Errorf("document has neither primary nor client content: %w", serrors.ErrMalformedDocument)
	}
	return errs
}

func (g *Group) validate() error {
	var errs error
	profiles := make([]string, 0, len(g.Profiles))
	for _, p := range g.Profiles {
		profiles = append(profiles, p.Name)
	}
	identities := make([]string, 0, len(g.Identities))
	for _, id := range g.Identities {
		identities = append(identities, id.Alias)
	}
	errs = multierr.Append(errs, checkUnique("profile", profiles))
	errs = multierr.Append(errs, checkUnique("identity", identities))
	errs = multierr.Append(errs, checkSingleActive(
		fmt.Sprintf("profiles of group %q", g.Name),
		activeCount(len(g.Profiles), func(i int) bool { return g.Profiles[i].Active })))
	errs = multierr.Append(errs, checkSingleActive(
		fmt.Sprintf("identities of group %q", g.Name),
		activeCount(len(g.Identities), func(i int) bool { return g.Identities[i].Active })))
	return errs
}

func checkUnique(kind string, names []string) error {
	var errs error
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			errs = multierr.Append(errs, fmt.Errorf("%s %q: %w", kind, name, serrors.ErrDuplicateName))
		}
		seen[name] = true
	}
	return errs
}

func checkSingleActive(what string, active int) error {
	if active > 1 {
		return fmt.Errorf("%s: %d members marked active, want at most one", what, active)
	}
	return nil
}

func activeCount(n int, isActive func(int) bool) int {
	count := 0
	for i := 0; i < n; i++ {
		if isActive(i) {
			count++
		}
	}
	return count
}

func groupNames(groups []*Group) []string {
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	return names
}

func envAliases(envs []*Environment) []string {
	names := make([]string, 0, len(envs))
	for _, e := range envs {
		names = append(names, e.Alias)
	}
	return names
}

func keyAliases(keys []*Key) []string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.Alias)
	}
	return names
}
