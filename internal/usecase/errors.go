package usecase

import "errors"

// Códigos de erro de negócio expostos à camada HTTP.
const (
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodePersistence     = "PERSISTENCE_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// ErrorCode extrai o código de negócio do erro; qualquer coisa fora da
// taxonomia conta como falha de persistência.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	var te *TechnicalError
	if errors.As(err, &te) {
		return te.Code
	}
	return CodePersistence
}

func NewUnauthorized(msg string) *DomainError {
	return &DomainError{Code: CodeUnauthorized, Message: msg}
}

func NewValidationError(msg string) *DomainError {
	return &DomainError{Code: CodeValidationError, Message: msg}
}

func NewNotFound(msg string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: msg}
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

func NewPersistenceError(msg string) *TechnicalError {
	return &TechnicalError{Code: CodePersistence, Message: msg}
}
