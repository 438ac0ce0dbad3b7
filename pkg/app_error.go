package pkg

import "net/http"

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// AppError carries the HTTP status and the client-facing message of a failed request.
//
// Code is only used for logs; the response body stays flat:
//   - 4xx => {"status":"fail","message":...}
//   - 5xx => {"status":"error","message":<raw error>}
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON body returned for failed requests.
type HTTPError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError builds the response body. Server errors expose the underlying
// error string when there is one.
func (e *AppError) ToHTTPError() HTTPError {
	if e.HTTPStatus >= http.StatusInternalServerError {
		msg := e.Message
		if e.Err != nil {
			msg = e.Err.Error()
		}
		return HTTPError{Status: StatusError, Message: msg}
	}
	return HTTPError{Status: StatusFail, Message: e.Message}
}
