package repository

import (
	"context"

	"quinta-booking/internal/domain/property"
	"quinta-booking/internal/infra"
	"quinta-booking/internal/infra/db"
)

type PropertyRepository struct{}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{}
}

const updatePropertySQL = `
UPDATE property_config SET
	name = $1,
	address = $2,
	max_capacity = $3,
	description = $4,
	rules_and_policies = $5,
	assistant_instruction = $6,
	images = $7,
	updated_at = now()
WHERE id = 1
`

func (r *PropertyRepository) Update(ctx context.Context, tx db.DBTX, cfg property.Config) error {
	images := cfg.Images
	if images == nil {
		images = []string{}
	}

	tag, err := tx.Exec(ctx, updatePropertySQL,
		cfg.Name,
		cfg.Address,
		cfg.MaxCapacity,
		cfg.Description,
		cfg.RulesAndPolicies,
		cfg.AssistantInstruction,
		images,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update property configuration", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("property configuration row missing", ErrSingletonRowMissing, infra.KindNotFound)
	}
	return nil
}
