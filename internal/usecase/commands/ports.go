package commands

import (
	"context"

	"quinta-booking/internal/domain/booking"
	"quinta-booking/internal/domain/pricing"
	"quinta-booking/internal/domain/property"
	"quinta-booking/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type BookingSnapshot struct {
	ID            uuid.UUID
	Status        string
	PaymentStatus string
	StartDate     booking.Date
	EndDate       booking.Date
	TotalPrice    int64
	DepositAmount int64
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// CreateApproved inserts an already-Approved booking only when no other
	// Approved booking overlaps its range. Returns uuid.Nil when the gate
	// rejects the insert.
	CreateApproved(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// ApproveIfFree flips Pending to Approved only when the range is still
	// free of other Approved bookings. Returns the affected row count.
	ApproveIfFree(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
	Transition(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to booking.Status) (int64, error)
	UpdatePayment(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.PaymentStatus) (int64, error)
	UpdateDeposit(ctx context.Context, tx db.DBTX, id uuid.UUID, amount int64) (int64, error)
}

type BookingCommandReads interface {
	SnapshotByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

type BlockedDateRepository interface {
	// Toggle flips membership of the day in the blocked set and reports the
	// resulting state, true meaning blocked.
	Toggle(ctx context.Context, tx db.DBTX, d booking.Date) (bool, error)
}

type PricingRepository interface {
	UpdateRules(ctx context.Context, tx db.DBTX, rules pricing.Rules) error
}

type PricingCommandReads interface {
	Rules(ctx context.Context) (pricing.Rules, error)
}

type PropertyRepository interface {
	Update(ctx context.Context, tx db.DBTX, cfg property.Config) error
}
