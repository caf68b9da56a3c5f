// Package errors provides structured error handling for statforge.
//
// Errors carry a code, a message, and optional metadata, and preserve
// context through wrapping:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", charID)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // handle missing record
//	}
//
// Multi-field input validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", int(input.Level), 1, 1000, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Layer guidelines: repositories return NotFound/AlreadyExists with
// record IDs in metadata and wrap storage errors; orchestrators
// validate inputs (InvalidArgument) and wrap repository errors with
// business context. The snapshot importer reports malformed input as
// DataLoss ("invalid configuration") rather than retrying.
package errors
