package engine

import (
	"fmt"

	serrors "github.com/termsui/suicfg/internal/errors"
	"github.com/termsui/suicfg/internal/model"
)

// AddGroup appends a new, empty group to a primary document.
type AddGroup struct {
	Name       string
	MakeActive bool
}

func (c AddGroup) apply(doc *model.Document) (*Change, error) {
	primary, err := requirePrimary(doc)
	if err != nil {
		return nil, err
	}
	if err := validName(c.Name); err != nil {
		return nil, err
	}
	if _, err := doc.FindGroup(c.Name); err == nil {
		return nil, fmt.Errorf("group %q: %w", c.Name, serrors.ErrDuplicateName)
	}

	change := &Change{Op: "add-group", Name: c.Name}
	group := &model.Group{Name: c.Name}
	if c.MakeActive {
		if prev := doc.ActiveGroup(); prev != nil {
			prev.Active = false
			change.Demoted = prev.Name
		}
		group.Active = true
	}
	primary.Groups = append(primary.Groups, group)
	return change, nil
}

// RenameGroup changes a group's name. Renaming the active group keeps it
// active; renaming a group to its current name is a no-op that succeeds.
type RenameGroup struct {
	Old string
	New string
}

func (c RenameGroup) apply(doc *model.Document) (*Change, error) {
	if _, err := requirePrimary(doc); err != nil {
		return nil, err
	}
	group, err := doc.FindGroup(c.Old)
	if err != nil {
		return nil, err
	}
	if err := validName(c.New); err != nil {
		return nil, err
	}
	if c.New != c.Old {
		if _, err := doc.FindGroup(c.New); err == nil {
			return nil, fmt.Errorf("group %q: %w", c.New, serrors.ErrDuplicateName)
		}
	}

	group.Name = c.New
	return &Change{Op: "rename-group", Name: c.New}, nil
}

// SetGroupActive makes the named group the active one, clearing the
// previous holder in the same operation.
type SetGroupActive struct {
	Name string
}

func (c SetGroupActive) apply(doc *model.Document) (*Change, error) {
	if _, err := requirePrimary(doc); err != nil {
		return nil, err
	}
	group, err := doc.FindGroup(c.Name)
	if err != nil {
		return nil, err
	}

	change := &Change{Op: "set-group-active", Name: c.Name}
	if prev := doc.ActiveGroup(); prev != nil && prev != group {
		prev.Active = false
		change.Demoted = prev.Name
	}
	group.Active = true
	return change, nil
}

// DeleteGroup removes a group and, atomically, every profile and identity
// it owns. The last group of a document cannot be deleted.
type DeleteGroup struct {
	Name string
}

func (c DeleteGroup) apply(doc *model.Document) (*Change, error) {
	primary, err := requirePrimary(doc)
	if err != nil {
		return nil, err
	}
	group, err := doc.FindGroup(c.Name)
	if err != nil {
		return nil, err
	}
	if len(primary.Groups) == 1 {
		return nil, fmt.Errorf("cannot delete the only group: %w", serrors.ErrWouldEmptyRequiredCollection)
	}

	change := &Change{Op: "delete-group", Name: c.Name}
	for i, g := range primary.Groups {
		if g == group {
			primary.Groups = append(primary.Groups[:i], primary.Groups[i+1:]...)
			break
		}
	}
	if group.Active {
		// Normalize promotes the first remaining group; name it for the caller.
		change.Promoted = primary.Groups[0].Name
	}
	return change, nil
}
