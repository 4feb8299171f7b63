package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HouseThingRead is the caller-visible projection of a household item.
type HouseThingRead struct {
	ID              uint            `json:"id"`
	RoomID          uint            `json:"room_id"`
	RoomName        string          `json:"room_name,omitempty"`
	Name            string          `json:"name"`
	Brand           string          `json:"brand"`
	PurchaseDate    time.Time       `json:"purchase_date"`
	Cost            decimal.Decimal `json:"cost"`
	HistoryID       uint            `json:"history_id"`
	IsActive        bool            `json:"is_active"`
	Note            string          `json:"note,omitempty"`
	CreatedDate     time.Time       `json:"created_date"`
	LastUpdatedDate time.Time       `json:"last_updated_date"`
}

// HouseThingCreate is the request body for creating a household item. It
// doubles as the renew request: renewal describes the replacement item's
// own attributes, never values copied from the row being replaced.
type HouseThingCreate struct {
	RoomID       uint            `json:"room_id" validate:"required"`
	Name         string          `json:"name" validate:"required,max=255"`
	Brand        string          `json:"brand" validate:"omitempty,max=255"`
	PurchaseDate time.Time       `json:"purchase_date"`
	Cost         decimal.Decimal `json:"cost"`
	Note         string          `json:"note" validate:"omitempty,max=1024"`
}

// HouseThingUpdate is the request body for updating a household item.
// HistoryID is intentionally absent: the grouping key is server-managed.
type HouseThingUpdate struct {
	RoomID       *uint            `json:"room_id"`
	Name         *string          `json:"name" validate:"omitempty,max=255"`
	Brand        *string          `json:"brand" validate:"omitempty,max=255"`
	PurchaseDate *time.Time       `json:"purchase_date"`
	Cost         *decimal.Decimal `json:"cost"`
	Note         *string          `json:"note" validate:"omitempty,max=1024"`
}

// RoomRead is the caller-visible projection of a room.
type RoomRead struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Floor           int       `json:"floor"`
	IsActive        bool      `json:"is_active"`
	Note            string    `json:"note,omitempty"`
	CreatedDate     time.Time `json:"created_date"`
	LastUpdatedDate time.Time `json:"last_updated_date"`
}

// RoomCreate is the request body for creating a room.
type RoomCreate struct {
	Name  string `json:"name" validate:"required,max=255"`
	Floor int    `json:"floor"`
	Note  string `json:"note" validate:"omitempty,max=1024"`
}

// RoomUpdate is the request body for updating a room.
type RoomUpdate struct {
	Name  *string `json:"name" validate:"omitempty,max=255"`
	Floor *int    `json:"floor"`
	Note  *string `json:"note" validate:"omitempty,max=1024"`
}
