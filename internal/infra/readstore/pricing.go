package readstore

import (
	"context"
	"time"

	"quinta-booking/internal/domain/booking"
	"quinta-booking/internal/domain/pricing"
	"quinta-booking/internal/infra"
	"quinta-booking/internal/infra/db"
	"quinta-booking/internal/pkg/pgconv"
	"quinta-booking/internal/usecase/queries"
)

type PricingReadStore struct {
	db db.DBTX
}

func NewPricingReadStore(pool db.DBTX) *PricingReadStore {
	return &PricingReadStore{db: pool}
}

const rulesSQL = `
SELECT daily_price, weekend_multiplier, guest_threshold, extra_guest_price, special_dates, updated_at
FROM pricing_rules
WHERE id = 1
`

func (r *PricingReadStore) Rules(ctx context.Context) (pricing.Rules, error) {
	row, err := r.rulesRow(ctx)
	if err != nil {
		return pricing.Rules{}, err
	}

	specialDates := make([]booking.Date, len(row.specialDates))
	for i, d := range row.specialDates {
		specialDates[i] = booking.NewDate(d)
	}

	rules, err := pricing.NewRules(row.dailyPrice, row.weekendMultiplier, row.guestThreshold, row.extraGuestPrice, specialDates)
	if err != nil {
		return pricing.Rules{}, infra.WrapRepoErr("invalid pricing rules in store", err)
	}
	return rules, nil
}

func (r *PricingReadStore) RulesView(ctx context.Context) (*queries.RulesView, error) {
	row, err := r.rulesRow(ctx)
	if err != nil {
		return nil, err
	}

	special := make([]string, len(row.specialDates))
	for i, d := range row.specialDates {
		special[i] = booking.NewDate(d).Key()
	}

	return &queries.RulesView{
		DailyPrice:        row.dailyPrice,
		WeekendMultiplier: row.weekendMultiplier,
		GuestThreshold:    row.guestThreshold,
		ExtraGuestPrice:   row.extraGuestPrice,
		SpecialDates:      special,
		UpdatedAt:         row.updatedAt,
	}, nil
}

type rulesRow struct {
	dailyPrice        int64
	weekendMultiplier float64
	guestThreshold    int
	extraGuestPrice   int64
	specialDates      []time.Time
	updatedAt         time.Time
}

func (r *PricingReadStore) rulesRow(ctx context.Context) (*rulesRow, error) {
	var row rulesRow
	err := r.db.QueryRow(ctx, rulesSQL).Scan(
		&row.dailyPrice,
		&row.weekendMultiplier,
		&row.guestThreshold,
		&row.extraGuestPrice,
		&row.specialDates,
		&row.updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing rules not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load pricing rules", err)
	}
	return &row, nil
}
