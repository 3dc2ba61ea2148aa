package usecases

// UseCaseError carries the HTTP status code a handler should answer with.
// Anything else coming out of a usecase is treated as an internal error.
type UseCaseError struct {
	Code    int
	Message string
}

func (e *UseCaseError) Error() string {
	return e.Message
}
