// Package apierr builds the structured gRPC errors every handler returns.
// Each error carries a code, a human message and an ErrorInfo detail with a
// stable machine-readable reason; clients branch on the reason, never on
// message text.
package apierr

import (
	"log"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Domain is the ErrorInfo domain for every error this service produces.
const Domain = "macosusesdk.com"

// Stable error reasons, grouped by class.
const (
	// Resource names and request shape.
	ReasonInvalidResourceName = "INVALID_RESOURCE_NAME"
	ReasonInvalidPageToken    = "INVALID_PAGE_TOKEN"
	ReasonInvalidUpdateMask   = "INVALID_UPDATE_MASK"
	ReasonRequiredField       = "REQUIRED_FIELD_MISSING"
	ReasonInvalidDimension    = "INVALID_DIMENSION"
	ReasonInvalidCoordinate   = "INVALID_COORDINATE"
	ReasonInvalidSelector     = "INVALID_SELECTOR"
	ReasonInvalidEnumValue    = "INVALID_ENUM_VALUE"
	ReasonInvalidAction       = "INVALID_ACTION"
	ReasonInvalidArgument     = "INVALID_ARGUMENT"

	// Not-found, per resource.
	ReasonApplicationNotFound = "APPLICATION_NOT_FOUND"
	ReasonWindowNotFound      = "WINDOW_NOT_FOUND"
	ReasonElementNotFound     = "ELEMENT_NOT_FOUND"
	ReasonDisplayNotFound     = "DISPLAY_NOT_FOUND"
	ReasonInputNotFound       = "INPUT_NOT_FOUND"
	ReasonObservationNotFound = "OBSERVATION_NOT_FOUND"
	ReasonSessionNotFound     = "SESSION_NOT_FOUND"
	ReasonMacroNotFound       = "MACRO_NOT_FOUND"
	ReasonOperationNotFound   = "OPERATION_NOT_FOUND"
	ReasonClipboardNotFound   = "CLIPBOARD_NOT_FOUND"
	ReasonRevisionNotFound    = "REVISION_NOT_FOUND"
	ReasonMethodNotFound      = "METHOD_NOT_FOUND"

	// Permission.
	ReasonAccessibilityDenied = "ACCESSIBILITY_PERMISSION_DENIED"
	ReasonFileAccessDenied    = "FILE_ACCESS_DENIED"

	// Preconditions.
	ReasonElementMissingBounds = "ELEMENT_MISSING_BOUNDS"
	ReasonAmbiguousWindow      = "AMBIGUOUS_WINDOW_MATCH"
	ReasonSessionNotActive     = "SESSION_NOT_ACTIVE"
	ReasonNoActiveTransaction  = "NO_ACTIVE_TRANSACTION"
	ReasonTransactionMismatch  = "TRANSACTION_ID_MISMATCH"
	ReasonNoCloseButton        = "WINDOW_NOT_CLOSABLE"
	ReasonNotADirectory        = "NOT_A_DIRECTORY"

	// Validation of scripts.
	ReasonSecurityViolation = "SECURITY_VIOLATION"

	// Internal.
	ReasonPlatformError      = "PLATFORM_ERROR"
	ReasonTimeout            = "TIMEOUT"
	ReasonSerializationError = "SERIALIZATION_ERROR"
)

var logger = log.New(log.Writer(), "[APIERR] ", log.LstdFlags)

// New builds a status error with an attached ErrorInfo. If packing the
// detail fails the bare status is returned; losing the detail is better than
// masking the original error.
func New(code codes.Code, reason, msg string, metadata map[string]string) error {
	st := status.New(code, msg)
	info := &errdetails.ErrorInfo{Reason: reason, Domain: Domain, Metadata: metadata}
	detailed, err := st.WithDetails(info)
	if err != nil {
		logger.Printf("dropping error details for %s: %v", reason, err)
		return st.Err()
	}
	return detailed.Err()
}

// InvalidName rejects a malformed resource name.
func InvalidName(resourceType, value, expectedFormat string) error {
	return New(codes.InvalidArgument, ReasonInvalidResourceName,
		"invalid "+resourceType+" resource name: "+value,
		map[string]string{
			"resourceType":   resourceType,
			"value":          value,
			"expectedFormat": expectedFormat,
		})
}

// InvalidArgument rejects a request field.
func InvalidArgument(reason, msg string, metadata map[string]string) error {
	return New(codes.InvalidArgument, reason, msg, metadata)
}

// RequiredField rejects an empty required string field.
func RequiredField(field string) error {
	return New(codes.InvalidArgument, ReasonRequiredField,
		"required field is missing: "+field,
		map[string]string{"field": field})
}

// NotFound reports a missing resource by name.
func NotFound(reason, resource string) error {
	return New(codes.NotFound, reason, resource+" not found",
		map[string]string{"resource": resource})
}

// FailedPrecondition reports a state conflict.
func FailedPrecondition(reason, msg string, metadata map[string]string) error {
	return New(codes.FailedPrecondition, reason, msg, metadata)
}

// PermissionDenied reports a host permission failure.
func PermissionDenied(reason, msg string) error {
	return New(codes.PermissionDenied, reason, msg, nil)
}

// Internal reports a platform or serialization failure.
func Internal(reason, msg string, metadata map[string]string) error {
	return New(codes.Internal, reason, msg, metadata)
}

// Platform surfaces an adapter error verbatim. Errors that already carry a
// status pass through untouched so adapter-reported codes survive.
func Platform(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && status.Code(err) != codes.Unknown {
		return err
	}
	return Internal(ReasonPlatformError, err.Error(), nil)
}

// Reason extracts the ErrorInfo reason from a status error, or "".
func Reason(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info.GetReason()
		}
	}
	return ""
}
