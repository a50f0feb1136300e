package orders

import (
	"errors"
	"time"
)

var ErrInvalidRequest = errors.New("invalid request")

// LineItem is one deduplicated course reference inside an order.
type LineItem struct {
	ID    int `bson:"id" json:"id"`
	Count int `bson:"count" json:"count"`
}

// Order is a checkout snapshot. It is written exactly once and never
// read back or mutated; nothing ties its course list to the live
// catalog afterwards.
type Order struct {
	Name      string     `bson:"name" json:"name"`
	Phone     string     `bson:"phone" json:"phone"`
	Courses   []LineItem `bson:"courses" json:"courses"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
}

// SpaceAdjustment asks for a course's remaining spaces to be reduced.
// Title is the join key against the catalog, not the numeric id.
type SpaceAdjustment struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

const (
	AdjustUpdated  = "updated"
	AdjustNotFound = "not_found"
)

// AdjustmentResult reports what happened to one batch item, so callers
// see which titles matched instead of not-found cases being swallowed.
type AdjustmentResult struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}
