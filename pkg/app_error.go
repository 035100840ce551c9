package pkg

import "fmt"

// AppError is the error shape returned by HTTP handlers.
//
// Every error body carries `success: false` so the frontend can branch on a
// single field, plus `code`, `message` and any diagnostics attached through
// WithDetail.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Details    map[string]any
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail attaches a diagnostic field to the response body.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = map[string]any{}
	}
	e.Details[key] = value
	return e
}

// ToHTTPError renders the JSON body. The wrapped error message is exposed as
// `error` only for internal errors.
func (e *AppError) ToHTTPError() map[string]any {
	body := map[string]any{
		"success": false,
		"code":    e.Code,
		"message": e.Message,
	}
	if e.Err != nil && e.HTTPStatus >= 500 {
		body["error"] = e.Err.Error()
	}
	for k, v := range e.Details {
		if _, reserved := body[k]; reserved {
			continue
		}
		body[k] = v
	}
	return body
}
