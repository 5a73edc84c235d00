package routes

import (
	"net/http"

	"github.com/mavazidev/mavazi-backend/api/responses"
	"github.com/mavazidev/mavazi-backend/api/validators"
	"github.com/mavazidev/mavazi-backend/internal/transactions"
	"github.com/mavazidev/mavazi-backend/pkg/enums"
	"github.com/mavazidev/mavazi-backend/pkg/logger"
)

type recordTransactionBody struct {
	Name   string `json:"name" validate:"required"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Type   string `json:"type" validate:"required,oneof=deposit withdrawal"`
}

// recordTransaction writes a manual ledger entry. Settlement and delivery
// write their own entries inside their transactions; this endpoint covers
// back-office corrections and top-ups.
func recordTransaction(logg *logger.Logger, ledger transactions.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body recordTransactionBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		record, err := ledger.Record(ctx, body.Name, body.Amount, enums.TransactionType(body.Type))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"id":               record.ID.String(),
			"transaction_code": record.TransactionCode,
			"amount":           record.AmountCents,
			"name":             record.Name,
			"type":             string(record.Type),
		})
	}
}
