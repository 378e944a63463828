// Package apperr define la taxonomía de errores de la aplicación y su
// mapeo único a códigos HTTP. Los handlers nunca inspeccionan strings.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindUnauthorized
	KindNotFound
	KindEmptyCatalog
	KindStore
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf devuelve el Kind del primer *Error en la cadena, o KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message devuelve el mensaje público del error. Para errores de
// infraestructura (o no tipados) no se expone el detalle interno.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case KindStore, KindUnknown:
			return "Server error"
		default:
			return e.Message
		}
	}
	return "Server error"
}

// Status es el único punto donde un Kind se traduce a código HTTP.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		// KindEmptyCatalog, KindStore y todo lo no tipado
		return http.StatusInternalServerError
	}
}
