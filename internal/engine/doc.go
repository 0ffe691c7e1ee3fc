// Package engine applies validated mutations to a configuration document.
//
// Every edit the presentation layer can perform is expressed as a Command:
// one command per entity/action pair (add, rename/edit, set-active,
// delete for groups, profiles and identities). Commands check every
// constraint before touching the document, so a rejected command leaves it
// exactly as it was, and Apply runs the shared active-flag normalization
// after every successful command so the "exactly one active member per
// non-empty sibling collection" invariant cannot be broken by any
// operation, present or future.
//
// Profile and identity commands take a scope: a group name for primary
// documents, or the empty string to target a client document's flat
// environment and keystore collections.
package engine
