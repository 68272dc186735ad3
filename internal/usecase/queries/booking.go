package queries

import (
	"context"

	"quinta-booking/internal/infra"
	"quinta-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrInvalidFilter   = errs.New("invalid status filter")
	ErrQueryFailed     = errs.New("query failed")
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, statusFilter *string) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, statusFilter *string) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, statusFilter *string) ([]*BookingListItem, error) {
	if statusFilter != nil {
		switch *statusFilter {
		case "pending", "approved", "rejected", "cancelled":
		default:
			return nil, ErrInvalidFilter
		}
	}
	items, err := q.repo.List(ctx, statusFilter)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return items, nil
}
