package room

import (
	"context"
	"errors"
	"strings"

	"fitclub/internal/logger"
	"fitclub/internal/metrics"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomNameTaken   = errors.New("room name already exists")
	ErrInvalidCapacity = errors.New("room capacity must be positive")
)

type Service interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	GetRoom(ctx context.Context, id int) (*Room, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error) {
	if req.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	r, err := s.repo.CreateRoom(ctx, strings.TrimSpace(req.Name), req.Capacity)
	if err != nil {
		return nil, err
	}

	metrics.RecordRoomCreated()
	logger.Info("Room created", "room_id", r.ID, "name", r.Name, "capacity", r.Capacity)
	return r, nil
}

func (s *service) ListRooms(ctx context.Context) ([]Room, error) {
	return s.repo.GetAllRooms(ctx)
}

func (s *service) GetRoom(ctx context.Context, id int) (*Room, error) {
	return s.repo.GetRoomByID(ctx, id)
}
