package services

import (
	"errors"
	"net/http"
)

// Kind servis hatalarının sınır katmanında eşlendiği türdür.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindForbidden
	KindUnauthorized
	KindValidation
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// HTTPStatus türün HTTP durum kodu karşılığı.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

var kindsBySentinel = []struct {
	err  error
	kind Kind
}{
	{ErrFormNotFound, KindNotFound},
	{ErrQuestionNotFound, KindNotFound},
	{ErrUserNotFound, KindNotFound},
	{ErrQuestionForbidden, KindForbidden},
	{ErrAuthInvalidCredentials, KindUnauthorized},
	{ErrFormInvalidInput, KindValidation},
	{ErrQuestionInvalidInput, KindValidation},
	{ErrResponseInvalidInput, KindValidation},
	{ErrAuthInvalidInput, KindValidation},
	{ErrFormClosed, KindConflict},
	{ErrFormHasNoQuestions, KindConflict},
	{ErrAuthEmailTaken, KindConflict},
}

// KindOf hatanın türünü döndürür; tanınmayan hatalar Internal sayılır.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	for _, m := range kindsBySentinel {
		if errors.Is(err, m.err) {
			return m.kind
		}
	}
	return KindInternal
}
