package rooms

import (
	"context"

	"github.com/Ira5334/backend/internal/domain"
	"github.com/Ira5334/backend/internal/repository"
	"go.uber.org/zap"
)

type RoomUseCase interface {
	List(ctx context.Context) ([]domain.Room, error)
}

type RoomCache interface {
	GetRooms(ctx context.Context) ([]domain.Room, error)
	SetRooms(ctx context.Context, rooms []domain.Room) error
}

type RoomService struct {
	repo  repository.RoomRepository
	cache RoomCache
	log   *zap.Logger
}

// NewRoomService builds the catalog. cache may be nil.
func NewRoomService(repo repository.RoomRepository, cache RoomCache, log *zap.Logger) *RoomService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RoomService{repo: repo, cache: cache, log: log}
}

// List returns every room ordered by id, served from the cache when possible.
func (s *RoomService) List(ctx context.Context) ([]domain.Room, error) {
	if s.cache != nil {
		cached, err := s.cache.GetRooms(ctx)
		if err != nil {
			s.log.Warn("rooms cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetRooms(ctx, rooms); err != nil {
			s.log.Warn("rooms cache write failed", zap.Error(err))
		}
	}
	return rooms, nil
}

var _ RoomUseCase = (*RoomService)(nil)
