package commands

import (
	"context"

	"quinta-booking/internal/domain/booking"
	"quinta-booking/internal/infra/db"
	"quinta-booking/internal/pkg/errs"
	"quinta-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidDate = errs.New("invalid date")

type CalendarCommands interface {
	// ToggleBlockedDate flips the day in or out of the blocked set and
	// returns true when the day ends up blocked.
	ToggleBlockedDate(ctx context.Context, date string) (bool, error)
}

type calendarUseCaseImpl struct {
	blockedRepo BlockedDateRepository
	db          *pgxpool.Pool
}

func NewCalendarUseCase(blockedRepo BlockedDateRepository, pool *pgxpool.Pool) CalendarCommands {
	return &calendarUseCaseImpl{blockedRepo: blockedRepo, db: pool}
}

func (uc *calendarUseCaseImpl) ToggleBlockedDate(ctx context.Context, date string) (bool, error) {
	d, err := booking.ParseDate(date)
	if err != nil {
		return false, ErrInvalidDate
	}

	blocked, err := shared.RunInTx(ctx, uc.db, func(tx db.DBTX) (bool, error) {
		return uc.blockedRepo.Toggle(ctx, tx, d)
	})
	if err != nil {
		return false, errs.Mark(err, ErrStoreFailure)
	}
	return blocked, nil
}
