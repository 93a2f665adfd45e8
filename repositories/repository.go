package repositories

import (
	"strings"

	"blog-cms/models"

	"github.com/google/uuid"
)

// validateID rejects identifiers that could never have been assigned by the
// store, so they are reported as bad input instead of a missing record.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return models.ErrInvalidID
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lower-cased LIKE pattern matching term anywhere.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
