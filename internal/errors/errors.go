package errors

import "errors"

// Validation errors indicate a rejected mutation. The document the mutation
// targeted is guaranteed to be unchanged when one of these is returned.
var (
	// ErrDuplicateName indicates a name or alias is already in use within its scope.
	ErrDuplicateName = errors.New("name already in use")

	// ErrNotFound indicates a referenced group, profile or identity does not exist.
	ErrNotFound = errors.New("no such entry")

	// ErrWouldEmptyRequiredCollection indicates a delete would leave a
	// collection empty that the document's format requires to be non-empty.
	ErrWouldEmptyRequiredCollection = errors.New("delete would empty a required collection")

	// ErrInvalidURL indicates an endpoint URL failed validation.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrInvalidAlias indicates a name or alias fails the format rules.
	ErrInvalidAlias = errors.New("invalid name or alias")
)

// Key generation errors indicate failures while creating new key material.
var (
	// ErrUnsupportedCurve indicates the requested signature scheme is not one
	// of ed25519, secp256k1 or secp256r1.
	ErrUnsupportedCurve = errors.New("unsupported curve")

	// ErrEntropyUnavailable indicates the secure random source could not be read.
	ErrEntropyUnavailable = errors.New("secure random source unavailable")
)

// Load errors indicate a configuration file could not be turned into a document.
var (
	// ErrMalformedDocument indicates the file is structurally invalid:
	// unparseable syntax, a missing required key, or a wrong value type.
	ErrMalformedDocument = errors.New("malformed configuration document")

	// ErrUnsupportedVersion indicates the file carries a schema-version
	// marker this editor does not recognize.
	ErrUnsupportedVersion = errors.New("unsupported configuration version")
)

// Save errors indicate a document could not be written back to disk.
var (
	// ErrNoPathSet indicates the document has never been saved; save-as must
	// be used instead.
	ErrNoPathSet = errors.New("document has no file path")
)

// Session errors indicate misuse of the modal edit session.
var (
	// ErrSessionAlreadyOpen indicates an edit session is already open
	// against the document.
	ErrSessionAlreadyOpen = errors.New("an edit session is already open")

	// ErrSessionClosed indicates the session was already committed or discarded.
	ErrSessionClosed = errors.New("edit session already closed")
)
