package service

import (
	"context"
	"log/slog"

	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
	"github.com/mbeller/hauskasse/pkg/mapper"
	"github.com/mbeller/hauskasse/pkg/paging"
	"github.com/mbeller/hauskasse/pkg/repository"
)

// HouseThingService manages household items and their replacement
// history.
type HouseThingService struct {
	*Crud[domain.HouseThing, dto.HouseThingCreate, dto.HouseThingUpdate, dto.HouseThingRead]
}

func NewHouseThingService(
	repo repository.Repository[domain.HouseThing],
	logger *slog.Logger,
) *HouseThingService {
	return &HouseThingService{newCrud(
		"housething", repo, logger,
		mapper.NewHouseThing, mapper.ApplyHouseThingUpdate, mapper.HouseThingToRead,
	)}
}

// Create persists a fresh item. A fresh item starts its own history
// group, so its HistoryID is stamped with the generated ID in the same
// transaction as the insert; a failed stamp rolls the insert back rather
// than leaving a row outside any group.
func (s *HouseThingService) Create(ctx context.Context, create *dto.HouseThingCreate) (*dto.HouseThingRead, error) {
	entity := s.newEntity(create)
	err := s.repo.WithTransaction(ctx, func(tx repository.Repository[domain.HouseThing]) error {
		if err := tx.Create(ctx, entity); err != nil {
			return err
		}
		entity.HistoryID = entity.ID
		return tx.Update(ctx, entity)
	})
	if err != nil {
		s.logger.Error("create failed", "error", err)
		return nil, err
	}
	return s.Get(ctx, entity.ID)
}

// Renew records the replacement of an existing item. The new row carries
// the source row's HistoryID and otherwise only the attributes of the
// replacement; the source row itself is left untouched.
func (s *HouseThingService) Renew(ctx context.Context, id uint, create *dto.HouseThingCreate) (*dto.HouseThingRead, error) {
	src, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	entity := s.newEntity(create)
	entity.HistoryID = src.HistoryID
	if err := s.repo.Create(ctx, entity); err != nil {
		s.logger.Error("renew failed", "source_id", id, "error", err)
		return nil, err
	}
	return s.Get(ctx, entity.ID)
}

// ListByRoom pages the items assigned to one room.
func (s *HouseThingService) ListByRoom(
	ctx context.Context,
	roomID uint,
	opts repository.ListOptions,
) (*paging.Page[dto.HouseThingRead], error) {
	return s.listBy(ctx, opts, "room_id = ?", roomID)
}

// History pages every generation of one item, newest and oldest alike,
// identified by the shared history group key. Replaced generations are
// usually soft-deleted, so the options should include inactive rows to
// see the whole chain.
func (s *HouseThingService) History(
	ctx context.Context,
	historyID uint,
	opts repository.ListOptions,
) (*paging.Page[dto.HouseThingRead], error) {
	return s.listBy(ctx, opts, "history_id = ?", historyID)
}

// RoomService manages the rooms of the house.
type RoomService struct {
	*Crud[domain.Room, dto.RoomCreate, dto.RoomUpdate, dto.RoomRead]
}

func NewRoomService(
	repo repository.Repository[domain.Room],
	logger *slog.Logger,
) *RoomService {
	return &RoomService{newCrud(
		"room", repo, logger,
		mapper.NewRoom, mapper.ApplyRoomUpdate, mapper.RoomToRead,
	)}
}
