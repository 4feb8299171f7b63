package mapper

import (
	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
)

// NewHouseThing builds a fresh household item entity from a create
// request. HistoryID is left zero; the service assigns the grouping key
// once the database has assigned an identity (or carries one forward on
// renewal).
func NewHouseThing(c *dto.HouseThingCreate) *domain.HouseThing {
	return &domain.HouseThing{
		Audit:        domain.Audit{IsActive: true, Note: c.Note},
		RoomID:       c.RoomID,
		Name:         c.Name,
		Brand:        c.Brand,
		PurchaseDate: c.PurchaseDate,
		Cost:         c.Cost,
	}
}

// ApplyHouseThingUpdate merges the permitted fields of an update request
// into an existing household item. HistoryID is server-managed and never
// merged.
func ApplyHouseThingUpdate(h *domain.HouseThing, u *dto.HouseThingUpdate) {
	if u.RoomID != nil {
		h.RoomID = *u.RoomID
	}
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.Brand != nil {
		h.Brand = *u.Brand
	}
	if u.PurchaseDate != nil {
		h.PurchaseDate = *u.PurchaseDate
	}
	if u.Cost != nil {
		h.Cost = *u.Cost
	}
	if u.Note != nil {
		h.Note = *u.Note
	}
}

// HouseThingToRead projects a household item to its read DTO.
func HouseThingToRead(h *domain.HouseThing) *dto.HouseThingRead {
	r := &dto.HouseThingRead{
		ID:              h.ID,
		RoomID:          h.RoomID,
		Name:            h.Name,
		Brand:           h.Brand,
		PurchaseDate:    h.PurchaseDate,
		Cost:            h.Cost,
		HistoryID:       h.HistoryID,
		IsActive:        h.IsActive,
		Note:            h.Note,
		CreatedDate:     h.CreatedDate,
		LastUpdatedDate: h.LastUpdatedDate,
	}
	if h.Room != nil {
		r.RoomName = h.Room.Name
	}
	return r
}

// NewRoom builds a fresh room entity from a create request.
func NewRoom(c *dto.RoomCreate) *domain.Room {
	return &domain.Room{
		Audit: domain.Audit{IsActive: true, Note: c.Note},
		Name:  c.Name,
		Floor: c.Floor,
	}
}

// ApplyRoomUpdate merges the permitted fields of an update request into
// an existing room.
func ApplyRoomUpdate(r *domain.Room, u *dto.RoomUpdate) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Floor != nil {
		r.Floor = *u.Floor
	}
	if u.Note != nil {
		r.Note = *u.Note
	}
}

// RoomToRead projects a room to its read DTO.
func RoomToRead(r *domain.Room) *dto.RoomRead {
	return &dto.RoomRead{
		ID:              r.ID,
		Name:            r.Name,
		Floor:           r.Floor,
		IsActive:        r.IsActive,
		Note:            r.Note,
		CreatedDate:     r.CreatedDate,
		LastUpdatedDate: r.LastUpdatedDate,
	}
}
