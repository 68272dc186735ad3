package repository

import (
	"context"

	"quinta-booking/internal/domain/booking"
	"quinta-booking/internal/infra"
	"quinta-booking/internal/infra/db"
)

type BlockedDateRepository struct{}

func NewBlockedDateRepository() *BlockedDateRepository {
	return &BlockedDateRepository{}
}

// Toggle removes the day when present, inserts it otherwise. Runs inside
// a caller-owned transaction so the two statements read one state.
func (r *BlockedDateRepository) Toggle(ctx context.Context, tx db.DBTX, d booking.Date) (bool, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM blocked_dates WHERE day = $1`, d.Time())
	if err != nil {
		return false, infra.WrapRepoErr("failed to unblock date", err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = tx.Exec(ctx, `INSERT INTO blocked_dates (day) VALUES ($1) ON CONFLICT (day) DO NOTHING`, d.Time())
	if err != nil {
		return false, infra.WrapRepoErr("failed to block date", err)
	}
	return true, nil
}
