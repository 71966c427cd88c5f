package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifica as falhas internas antes de virarem resposta HTTP
type ErrorKind string

const (
	ErrKindStoreUnavailable ErrorKind = "store_unavailable"
	ErrKindUpstreamFetch    ErrorKind = "upstream_fetch_failed"
	ErrKindBadParameter     ErrorKind = "bad_parameter"
	ErrKindInternal         ErrorKind = "internal"
)

// Erros de validação do feed
var (
	ErrNegativePrice     = errors.New("price must not be negative")
	ErrMissingDateOfSale = errors.New("dateOfSale is required")
)

// Error é um erro com o tipo e a operação que falhou
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func NewError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf retorna o tipo do erro; erros sem classificação são internos
func KindOf(err error) ErrorKind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ErrKindInternal
}
