package ports

import "github.com/aalvaropc/mathsheets/internal/domain"

// KeyStore persists answer keys for generated sheets.
type KeyStore interface {
	SaveKey(key domain.AnswerKey) (id string, err error)
}
