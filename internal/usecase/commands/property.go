package commands

import (
	"context"
	"strings"

	"quinta-booking/internal/domain/property"
	"quinta-booking/internal/infra/db"
	"quinta-booking/internal/pkg/errs"
	"quinta-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidProperty = errs.New("invalid property configuration")

type UpdatePropertyRequest struct {
	Name                 string
	Address              string
	MaxCapacity          int
	Description          string
	RulesAndPolicies     string
	AssistantInstruction string
	Images               []string
}

type PropertyCommands interface {
	UpdateProperty(ctx context.Context, req UpdatePropertyRequest) error
}

type propertyUseCaseImpl struct {
	propertyRepo PropertyRepository
	db           *pgxpool.Pool
}

func NewPropertyUseCase(propertyRepo PropertyRepository, pool *pgxpool.Pool) PropertyCommands {
	return &propertyUseCaseImpl{propertyRepo: propertyRepo, db: pool}
}

func (uc *propertyUseCaseImpl) UpdateProperty(ctx context.Context, req UpdatePropertyRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrInvalidProperty
	}
	if req.MaxCapacity < 1 {
		return ErrInvalidProperty
	}

	cfg := property.Config{
		Name:                 strings.TrimSpace(req.Name),
		Address:              strings.TrimSpace(req.Address),
		MaxCapacity:          req.MaxCapacity,
		Description:          req.Description,
		RulesAndPolicies:     req.RulesAndPolicies,
		AssistantInstruction: req.AssistantInstruction,
		Images:               req.Images,
	}

	_, err := shared.RunInTx(ctx, uc.db, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, uc.propertyRepo.Update(ctx, tx, cfg)
	})
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}
