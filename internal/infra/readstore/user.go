package readstore

import (
	"context"

	"quinta-booking/internal/infra"
	"quinta-booking/internal/infra/db"
	"quinta-booking/internal/pkg/pgconv"
	"quinta-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(pool db.DBTX) *UserReadStore {
	return &UserReadStore{db: pool}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx,
		`SELECT id, username, role, is_active FROM users WHERE id = $1`, id,
	).Scan(&view.ID, &view.Username, &view.Role, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

func (r *UserReadStore) FindByUsername(ctx context.Context, username string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		passwordHash string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, username, role, is_active, password_hash FROM users WHERE username = $1`, username,
	).Scan(&view.ID, &view.Username, &view.Role, &view.IsActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}
	return &view, passwordHash, nil
}
