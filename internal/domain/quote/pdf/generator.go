package pdf

import "cbl-crm/go_backend/internal/domain/quote"

type Generator interface {
	Generate(q quote.Quote) ([]byte, error)
}
