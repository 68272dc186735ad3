package readstore

import (
	"context"

	"quinta-booking/internal/infra"
	"quinta-booking/internal/infra/db"
	"quinta-booking/internal/pkg/pgconv"
	"quinta-booking/internal/usecase/queries"
)

type PropertyReadStore struct {
	db db.DBTX
}

func NewPropertyReadStore(pool db.DBTX) *PropertyReadStore {
	return &PropertyReadStore{db: pool}
}

const propertySQL = `
SELECT name, address, max_capacity, description, rules_and_policies, assistant_instruction, images
FROM property_config
WHERE id = 1
`

func (r *PropertyReadStore) Get(ctx context.Context) (*queries.PropertyView, error) {
	var view queries.PropertyView
	err := r.db.QueryRow(ctx, propertySQL).Scan(
		&view.Name,
		&view.Address,
		&view.MaxCapacity,
		&view.Description,
		&view.RulesAndPolicies,
		&view.AssistantInstruction,
		&view.Images,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property configuration not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load property configuration", err)
	}
	return &view, nil
}
