// Package errors provides the structured error type used across the
// character service.
//
// Errors carry a Code, a message, an optional wrapped cause, and optional
// metadata. Repositories map storage conditions onto the taxonomy
// (CodeNotFound for missing or out-of-scope rows, CodeInvalidArgument for
// malformed input, CodeInternal/CodeUnavailable for transport faults) and
// callers branch on it with the Is* predicates.
//
// Creating errors:
//
//	err := errors.NotFoundf("character %s not found", id)
//	err := errors.InvalidArgument("school year must be between 1 and 7")
//
// Wrapping preserves the original code:
//
//	if err != nil {
//		return errors.Wrapf(err, "failed to load character %s", id)
//	}
//
// Field-level validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("ownerID", input.OwnerID, vb)
//	errors.ValidateRange("schoolYear", input.Year, 1, 7, vb)
//	if err := vb.Build(); err != nil {
//		return err
//	}
package errors
