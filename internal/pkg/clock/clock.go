// Package clock abstracts the time source used when stamping bookings.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

func NewRealClock() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
