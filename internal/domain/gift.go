package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("gift not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Gift is the single persisted entity: one wish-list line for one kid.
// Does not depend on Gin, SQLite or Redis.
type Gift struct {
	ID           int64
	Kid          string
	Item         string
	Link         string
	Helper       string
	DeliveryDate string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GiftFields holds the mutable columns after defaults were filled in.
type GiftFields struct {
	Kid          string
	Item         string
	Link         string
	Helper       string
	DeliveryDate string
}

// Fields returns the mutable part of g.
func (g Gift) Fields() GiftFields {
	return GiftFields{
		Kid:          g.Kid,
		Item:         g.Item,
		Link:         g.Link,
		Helper:       g.Helper,
		DeliveryDate: g.DeliveryDate,
	}
}
