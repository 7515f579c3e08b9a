package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidReference is returned when a write points at a missing parent row.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// wrapErr translates gorm errors into repository sentinels and tags every
// other failure with the operation that produced it.
func wrapErr(err error, op string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w", op, ErrInvalidReference)
	}
	return fmt.Errorf("%s: %w", op, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term anywhere in a value.
// Wildcard characters inside term match literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
