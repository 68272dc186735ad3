package repository

import (
	"context"
	"errors"

	"quinta-booking/internal/domain/pricing"
	"quinta-booking/internal/infra"
	"quinta-booking/internal/infra/db"
)

// Configuration tables hold exactly one row, created by the migration.
var ErrSingletonRowMissing = errors.New("singleton row missing")

type PricingRepository struct{}

func NewPricingRepository() *PricingRepository {
	return &PricingRepository{}
}

const updateRulesSQL = `
UPDATE pricing_rules SET
	daily_price = $1,
	weekend_multiplier = $2,
	guest_threshold = $3,
	extra_guest_price = $4,
	special_dates = $5::date[],
	updated_at = now()
WHERE id = 1
`

// The rules live in a single fixed row seeded by the migration.
func (r *PricingRepository) UpdateRules(ctx context.Context, tx db.DBTX, rules pricing.Rules) error {
	special := make([]string, 0, len(rules.SpecialDates()))
	for _, d := range rules.SpecialDates() {
		special = append(special, d.Key())
	}

	tag, err := tx.Exec(ctx, updateRulesSQL,
		rules.DailyPrice(),
		rules.WeekendMultiplier(),
		rules.GuestThreshold(),
		rules.ExtraGuestPrice(),
		special,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update pricing rules", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pricing rules row missing", ErrSingletonRowMissing, infra.KindNotFound)
	}
	return nil
}
