package errors

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeParse              ErrorCode = "PARSE_ERROR"
	CodeAbsoluteImport     ErrorCode = "ABSOLUTE_IMPORT"
	CodeDeepRelativeImport ErrorCode = "DEEP_RELATIVE_IMPORT"
	CodeUnresolvedPath     ErrorCode = "UNRESOLVED_PATH"
	CodeMissingClass       ErrorCode = "MISSING_CLASS_DEFINITION"
	CodeManifest           ErrorCode = "MANIFEST_ERROR"
	CodeGit                ErrorCode = "GIT_ERROR"
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
)

const (
	CtxPath    = "path"
	CtxPackage = "package"
	CtxClass   = "class"
	CtxSymbol  = "symbol"
)

// DomainError carries a closed error code plus free-form context so the top
// level can always report which package/file a fatal error belongs to.
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Context) > 0 {
		msg += fmt.Sprintf(" %v", e.Context)
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, msg string) *DomainError {
	return &DomainError{Code: code, Message: msg}
}

func Wrap(err error, code ErrorCode, msg string) *DomainError {
	return &DomainError{Code: code, Message: msg, Err: err}
}

func AddContext(err error, key string, value interface{}) error {
	var de *DomainError
	if errors.As(err, &de) {
		de.WithContext(key, value)
		return de
	}
	return &DomainError{
		Code:    CodeInternal,
		Message: "wrapped error",
		Err:     err,
		Context: map[string]interface{}{key: value},
	}
}

// IsCode checks if an error has a specific error code.
func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
