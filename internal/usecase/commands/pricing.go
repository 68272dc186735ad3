package commands

import (
	"context"

	"quinta-booking/internal/domain/booking"
	"quinta-booking/internal/domain/pricing"
	"quinta-booking/internal/infra/db"
	"quinta-booking/internal/pkg/errs"
	"quinta-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidRules = errs.New("invalid pricing rules")

type UpdateRulesRequest struct {
	DailyPrice        int64
	WeekendMultiplier float64
	GuestThreshold    int
	ExtraGuestPrice   int64
	SpecialDates      []string
}

type PricingCommands interface {
	// UpdateRules replaces the pricing configuration. Existing bookings
	// keep their frozen totals; only future quotes see the change.
	UpdateRules(ctx context.Context, req UpdateRulesRequest) error
}

type pricingUseCaseImpl struct {
	pricingRepo PricingRepository
	db          *pgxpool.Pool
}

func NewPricingUseCase(pricingRepo PricingRepository, pool *pgxpool.Pool) PricingCommands {
	return &pricingUseCaseImpl{pricingRepo: pricingRepo, db: pool}
}

func (uc *pricingUseCaseImpl) UpdateRules(ctx context.Context, req UpdateRulesRequest) error {
	specialDates := make([]booking.Date, 0, len(req.SpecialDates))
	for _, s := range req.SpecialDates {
		d, err := booking.ParseDate(s)
		if err != nil {
			return errs.Mark(err, ErrInvalidRules)
		}
		specialDates = append(specialDates, d)
	}

	rules, err := pricing.NewRules(req.DailyPrice, req.WeekendMultiplier, req.GuestThreshold, req.ExtraGuestPrice, specialDates)
	if err != nil {
		return errs.Mark(err, ErrInvalidRules)
	}

	_, err = shared.RunInTx(ctx, uc.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, uc.pricingRepo.UpdateRules(ctx, tx, rules)
	})
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}
