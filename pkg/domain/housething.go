package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HouseThing is a physical household item assigned to a room.
//
// HistoryID groups successive records describing the same conceptual item:
// renewing a thing inserts a new row that carries the old row's HistoryID,
// so the full replacement history of "the washing machine" can be read
// back with one query. A freshly created thing starts its own group with
// HistoryID equal to its own ID.
type HouseThing struct {
	Audit
	RoomID       uint `gorm:"not null;index"`
	Room         *Room
	Name         string `gorm:"size:255;not null"`
	Brand        string `gorm:"size:255"`
	PurchaseDate time.Time
	Cost         decimal.Decimal `gorm:"type:decimal(18,2)"`
	HistoryID    uint            `gorm:"index"`
}

// Room is a room of the house holding things.
type Room struct {
	Audit
	Name  string `gorm:"size:255;not null"`
	Floor int
	// One-directional collection navigation; rooms are never loaded from
	// a thing.
	HouseThings []HouseThing
}
