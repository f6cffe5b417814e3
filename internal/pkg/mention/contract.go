//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package mention

import (
	"context"

	"github.com/s21platform/staff-chat-service/internal/model"
)

type Searcher interface {
	Search(ctx context.Context, query string) ([]model.RecordRef, error)
}
