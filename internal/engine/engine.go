package engine

import (
	"fmt"
	"net/url"
	"regexp"

	serrors "github.com/termsui/suicfg/internal/errors"
	"github.com/termsui/suicfg/internal/model"
)

// Name rules carried over from the interactive validators: group and
// profile names are 3-32 characters, identity aliases up to 64, letters,
// underscore and hyphen only.
var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z_-]{3,32}$`)
	aliasRe = regexp.MustCompile(`^[a-zA-Z_-]{3,64}$`)
)

// Change describes what a successful command did, for the presentation
// layer to report. Demoted names the member whose active flag was cleared
// as a side effect, Promoted the member promoted after a delete.
type Change struct {
	Op       string
	Scope    string
	Name     string
	Demoted  string
	Promoted string
}

// Command is one validated mutation. Implementations check every
// constraint before mutating, so a non-nil error guarantees the document
// is unchanged.
type Command interface {
	apply(doc *model.Document) (*Change, error)
}

// Apply runs cmd against doc. On success the active-flag invariant has
// been re-established before Apply returns; on failure doc is untouched
// and the error wraps the sentinel identifying the violated constraint.
func Apply(doc *model.Document, cmd Command) (*Change, error) {
	change, err := cmd.apply(doc)
	if err != nil {
		return nil, err
	}
	doc.Normalize()
	return change, nil
}

func validName(name string) error {
	if !nameRe.MatchString(name) {
		return fmt.Errorf("name %q must match %s: %w", name, nameRe, serrors.ErrInvalidAlias)
	}
	return nil
}

func validAlias(alias string) error {
	if !aliasRe.MatchString(alias) {
		return fmt.Errorf("alias %q must match %s: %w", alias, aliasRe, serrors.ErrInvalidAlias)
	}
	return nil
}

func validURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%q: %v: %w", raw, err, serrors.ErrInvalidURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q: need an http(s) URL with a host: %w", raw, serrors.ErrInvalidURL)
	}
	return nil
}

func requirePrimary(doc *model.Document) (*model.PrimaryConfig, error) {
	if doc.Primary == nil {
		return nil, fmt.Errorf("document has no group collection: %w", serrors.ErrNotFound)
	}
	return doc.Primary, nil
}

func requireClient(doc *model.Document) (*model.ClientConfig, error) {
	if doc.Client == nil {
		return nil, fmt.Errorf("document has no flat collections, use a group scope: %w", serrors.ErrNotFound)
	}
	return doc.Client, nil
}
