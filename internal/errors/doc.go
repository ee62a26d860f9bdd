// Package errors provides structured errors for monster-maker.
//
// Every layer returns *Error values carrying a Code, a user-facing message and
// optional metadata. Handlers map the Code onto an HTTP status (Code.HTTPStatus)
// and the ops gRPC listener onto a gRPC status (Error.GRPCStatus).
//
// Creating errors:
//
//	err := errors.NotFoundf("creature %s not found", id)
//	err := errors.FailedPrecondition("no parts to export")
//
// Wrapping keeps the code of a wrapped *Error, or becomes Internal otherwise:
//
//	if err := repo.Create(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save composite")
//	}
//
// Validating configs and inputs:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Repositories return NotFound/AlreadyExists and wrap storage failures.
// Orchestrators validate inputs (InvalidArgument) and session state
// (FailedPrecondition, Aborted). Handlers only translate.
package errors
