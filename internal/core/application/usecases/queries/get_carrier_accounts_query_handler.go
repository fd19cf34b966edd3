package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCarrierAccountsQueryHandler lists carrier API accounts. Credentials
// stay out of the result; only the external customer ID is exposed.
type GetCarrierAccountsQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierAccountsQueryHandler creates a handler for account listings.
func NewGetCarrierAccountsQueryHandler(db *gorm.DB) GetCarrierAccountsQueryHandler {
	return GetCarrierAccountsQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetCarrierAccountsQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierAccountsQuery,
) ([]GetCarrierAccountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			a.id,
			a.carrier_id,
			c.name,
			a.label,
			a.base_url,
			a.external_id,
			a.is_enabled
		FROM carrier_accounts a
		JOIN carriers c ON c.id = a.carrier_id
	`
	args := make([]any, 0, 1)
	if query.CarrierID() != nil {
		sql += ` WHERE a.carrier_id = ?`
		args = append(args, query.CarrierID().Bytes())
	}
	sql += ` ORDER BY a.created_at, a.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]GetCarrierAccountsQueryResponse, 0)
	for rows.Next() {
		var resp GetCarrierAccountsQueryResponse
		var id, carrierID uuid.UUID

		err = rows.Scan(
			&id,
			&carrierID,
			&resp.CarrierName,
			&resp.Label,
			&resp.BaseURL,
			&resp.ExternalID,
			&resp.IsEnabled,
		)
		if err != nil {
			return nil, err
		}

		accountID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(carrierID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = accountID
		resp.CarrierID = ownerID

		accounts = append(accounts, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}
