// Package errors provides the structured error type used across ipc-metadata.
//
// Every error carries a Code, a user facing message, an optional cause and
// optional metadata. Codes line up with gRPC status codes so handlers can
// convert without guessing, and with HTTP status codes for the JSON gateway.
//
// # Basic Usage
//
//	err := errors.OutOfRangef("token %d does not exist", id).
//	    WithMeta("token_id", id).
//	    WithMeta("total_supply", supply)
//
// Wrapping keeps the code of a wrapped *Error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load token snapshot")
//	}
//
// Changing the code while keeping the cause:
//
//	errors.WrapWithCode(err, errors.CodeDataLoss, "dna seed is malformed")
//
// # Checking
//
//	if errors.IsOutOfRange(err) { ... }
//	code := errors.GetCode(err)
//
// # Transport
//
// ToGRPCError and FromGRPCError convert at the gRPC boundary; metadata travels
// as a google.rpc.ErrorInfo detail. Code.HTTPStatus maps codes for HTTP.
package errors
