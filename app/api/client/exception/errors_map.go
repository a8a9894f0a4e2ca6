package exception

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCode int

const (
	ErrCodeNoError                 ErrorCode = iota // 0
	ErrorCodeEntityNotFound                         // 1
	ErrorCodeFailedBindingData                      // 2
	ErrorCodeValidationFailed                       // 3
	ErrorCodeUnauthorized                           // 4
	ErrorCodeCodeRateLimitExceeded                  // 5
	ErrorCodeInvalidParameter                       // 6
	ErrorCodeMissingUserContext                     // 7
	ErrorCodeTokenExpired                           // 8
	ErrorCodeInvalidToken                           // 9
	ErrorCodeInternalServer                         // 10
	ErrorCodeForbidden                              // 11
	ErrorCodeConflict                               // 12
	ErrorCodeInvalidCredentials                     // 13
	ErrorCodeInactiveAccount                        // 14
	ErrorCodeRouteNotFound                          // 15
)

var (
	ErrUnauthorized          = errors.New("request is unauthorized")
	ErrEntityNotFound        = errors.New("entity not found")
	ErrFailedBindingData     = errors.New("failed to bind data")
	ErrValidationFailed      = errors.New("validation failed")
	ErrCodeRateLimitExceeded = errors.New("rate limit exceeded")
	ErrInvalidParameter      = errors.New("invalid parameter")
	ErrMissingUserContext    = errors.New("missing user context")
	ErrTokenExpired          = errors.New("token expired")
	ErrInvalidToken          = errors.New("invalid token")
	ErrInternalServer        = errors.New("internal server error")
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("conflict")
	ErrInvalidCredentials    = errors.New("invalid_credentials")
	ErrInactiveAccount       = errors.New("inactive_account")
	ErrRouteNotFound         = errors.New("route not found")
)

var errorsMap = map[ErrorCode]error{
	ErrorCodeUnauthorized:          ErrUnauthorized,
	ErrorCodeEntityNotFound:        ErrEntityNotFound,
	ErrorCodeFailedBindingData:     ErrFailedBindingData,
	ErrorCodeValidationFailed:      ErrValidationFailed,
	ErrorCodeCodeRateLimitExceeded: ErrCodeRateLimitExceeded,
	ErrorCodeInvalidParameter:      ErrInvalidParameter,
	ErrorCodeMissingUserContext:    ErrMissingUserContext,
	ErrorCodeTokenExpired:          ErrTokenExpired,
	ErrorCodeInvalidToken:          ErrInvalidToken,
	ErrorCodeInternalServer:        ErrInternalServer,
	ErrorCodeForbidden:             ErrForbidden,
	ErrorCodeConflict:              ErrConflict,
	ErrorCodeInvalidCredentials:    ErrInvalidCredentials,
	ErrorCodeInactiveAccount:       ErrInactiveAccount,
	ErrorCodeRouteNotFound:         ErrRouteNotFound,
}

func GetErrorByCode(code ErrorCode) error {
	return errorsMap[code]
}

// ErrorWithContext attaches additional context to an error as key-value pairs.
//
// When to use this method:
//
//   - Use ErrorWithContext when you want to add contextual information (such as IDs, parameters, or state) to an error before returning or logging it.
//   - This is especially useful for debugging, tracing, or when errors are handled at higher levels and you want to know the circumstances under which they occurred.
//   - The context is provided as variadic arguments in key-value pairs (e.g., "userID", 123, "action", "update").
//
// Example:
//
//	err := GetErrorByCode(ErrorCodeEntityNotFound)
//	errWithCtx := ErrorWithContext(err, "userID", 123, "operation", "fetchProfile")
//	// errWithCtx.Error() will be: "userID = 123 , operation = fetchProfile: entity not found"
//
// Wrong usage example warning:
//   - Do NOT pass an odd number of context arguments; always provide key-value pairs.
//     For example, ErrorWithContext(err, "userID", 123, "operation") will append "missing ctx" as the value for "operation".
//   - Do NOT use this for sensitive data unless you are sure it is safe to log or expose.
func ErrorWithContext(err error, errorContext ...any) error {
	if ctx := formatKeyValuePairs(errorContext); ctx != "" {
		err = fmt.Errorf("%s: %w", ctx, err)
	} else {
		err = fmt.Errorf("%w", err)
	}
	return err
}

// JoinErrors combines two errors into one, optionally attaching context to the new error.
//
// When to use this method:
//   - Use JoinErrors when you want to aggregate multiple errors together, such as when collecting errors from multiple operations.
//   - This is useful for batch operations, multi-step processes, or when you want to return a single error that represents several failures.
//   - The new error can have context attached using key-value pairs, just like ErrorWithContext.
//
// Example:
//
//	err1 := GetErrorByCode(ErrorCodeEntityNotFound)
//	err2 := GetErrorByCode(ErrorCodeInvalidParameter)
//	combined := JoinErrors(err1, err2, "param", "userID")
//	// combined.Error() will include both errors and the context for err2.
//
// Wrong usage example warning:
//   - Do NOT pass an odd number of context arguments; always provide key-value pairs.
func JoinErrors(errs error, newErr error, errorContext ...any) error {
	newErr = ErrorWithContext(newErr, errorContext...)
	return errors.Join(errs, newErr)
}

func formatKeyValuePairs(errorContext []any) string {
	if len(errorContext)%2 != 0 {
		errorContext = append(errorContext, "missing ctx")
	}
	pairs := make([]string, 0, len(errorContext)/2)
	for i := 0; i < len(errorContext); i += 2 {
		key := errorContext[i]
		value := errorContext[i+1]
		pairs = append(pairs, fmt.Sprintf("%v = %v", key, value))
	}
	return strings.Join(pairs, " , ")
}
