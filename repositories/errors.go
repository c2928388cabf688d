package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("kayıt bulunamadı")
	ErrReferenceNotFound = errors.New("ilişkili kayıt bulunamadı")
	ErrDuplicate         = errors.New("kayıt zaten mevcut")
)

// PostgreSQL hata kodları
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translateError GORM ve sürücü hatalarını repository hatalarına çevirir.
// Tanınmayan hatalar olduğu gibi döner.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReferenceNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return ErrReferenceNotFound
		case pgUniqueViolation:
			return ErrDuplicate
		}
	}

	// Çeviri desteklemeyen sürücüler (ör. SQLite) için mesaj kontrolü
	msg := err.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrReferenceNotFound
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrDuplicate
	}
	return err
}

// isKnown beklenen (loglanmayacak) repository hatası mı?
func isKnown(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrReferenceNotFound) || errors.Is(err, ErrDuplicate)
}
