// Package errors provides typed error values for the suicfg core.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Validation errors: a mutation was rejected and the document is
//     unchanged (ErrDuplicateName, ErrNotFound, ...)
//   - Key generation errors: keypair creation failed (ErrUnsupportedCurve,
//     ErrEntropyUnavailable)
//   - Load/save errors: a file could not be parsed or written
//     (ErrMalformedDocument, ErrUnsupportedVersion, ErrNoPathSet)
//   - Session errors: modal edit session misuse (ErrSessionAlreadyOpen,
//     ErrSessionClosed)
//
// # Usage
//
// Return errors from internal packages:
//
//	if _, err := doc.FindGroup(name); err == nil {
//	    return fmt.Errorf("group %q: %w", name, errors.ErrDuplicateName)
//	}
//
// Handle errors in the CLI layer:
//
//	_, err := session.Commit()
//	if errors.Is(err, serrors.ErrDuplicateName) {
//	    // Show user-friendly message
//	}
package errors
