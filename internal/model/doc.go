// Package model holds the canonical, format-independent representation of a
// suicfg configuration document.
//
// A Document is a tagged variant: it carries either the primary
// Groups/Profiles/Identities shape (PysuiConfig.json or .toml) or the
// flatter client Environments/Keys shape (client.yaml), never both. The
// format adapters in internal/format map on-disk bytes onto this package,
// and the mutation engine in internal/engine is the only code that should
// change a loaded document.
//
// Collections preserve insertion order. Display order and the "first
// remaining member becomes active" promotion rule both depend on it.
//
// Types in this package are plain data with query accessors; they perform
// no I/O. Nothing here is safe for concurrent mutation: a document belongs
// to a single caller, the presentation event loop.
package model
