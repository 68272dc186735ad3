package queries

import (
	"context"

	"quinta-booking/internal/pkg/errs"
)

type PropertyQueries interface {
	Get(ctx context.Context) (*PropertyView, error)
}

type PropertyViewRepo interface {
	Get(ctx context.Context) (*PropertyView, error)
}

type propertyQueriesImpl struct {
	repo PropertyViewRepo
}

func NewPropertyQueries(repo PropertyViewRepo) PropertyQueries {
	return &propertyQueriesImpl{repo: repo}
}

func (q *propertyQueriesImpl) Get(ctx context.Context) (*PropertyView, error) {
	view, err := q.repo.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}
