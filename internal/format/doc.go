// Package format translates between on-disk configuration bytes and the
// canonical model.
//
// Three adapters cover the two schemas: the primary
// Groups/Profiles/Identities schema in its JSON and TOML encodings
// (PysuiConfig.json / PysuiConfig.toml), and the client Environments/Keys
// schema in YAML (client.yaml). Each adapter is bidirectional.
//
// Unknown top-level keys are preserved through a parse/serialize cycle so
// the editor stays forward-compatible with fields it does not model. Byte
// identity is not promised — key order and cosmetic formatting may change —
// but one parse/serialize cycle reaches a fixed point: parsing the
// serialized output yields a document structurally equal to the first
// parse.
package format
