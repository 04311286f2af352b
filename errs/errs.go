package errs

import "errors"

const (
	CodeInvalidRequest       = "invalid_request"
	CodeResourceNotFound     = "resource_not_found"
	CodeUnprocessableContent = "unprocessable_content"
	CodeInternalServerError  = "internal_server_error"
	CodeTimeout              = "timeout"
)

var (
	ErrUnexpectedLiveAPIStatusCode    = errors.New("unexpected status code received from live api")
	ErrUnexpectedSummaryAPIStatusCode = errors.New("unexpected status code received from summary api")
	ErrUnexpectedMediaStatusCode      = errors.New("unexpected status code received from media host")
	ErrUnexpectedPushStatusCode       = errors.New("unexpected status code received from push gateway")
)

type ResourceNotFoundError struct {
	Err error
}

func NewResourceNotFoundError(err error) ResourceNotFoundError {
	return ResourceNotFoundError{Err: err}
}

func (e ResourceNotFoundError) Error() string {
	return e.Err.Error()
}

type UnprocessableContentError struct {
	Err error
}

func NewUnprocessableContentError(err error) UnprocessableContentError {
	return UnprocessableContentError{Err: err}
}

func (e UnprocessableContentError) Error() string {
	return e.Err.Error()
}

type SummaryNotReadyError struct {
	Message string
}

func (e SummaryNotReadyError) Error() string {
	return e.Message
}

type FixtureNotFoundError struct {
	Message string
}

func (e FixtureNotFoundError) Error() string {
	return e.Message
}

type SubscriptionAlreadyExistsError struct {
	Message string
}

func (e SubscriptionAlreadyExistsError) Error() string {
	return e.Message
}

type SubscriptionNotFoundError struct {
	Message string
}

func (e SubscriptionNotFoundError) Error() string {
	return e.Message
}
