package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/JosiephousPierre/SELab-final/internal/dto"
	"github.com/JosiephousPierre/SELab-final/internal/repository"
)

// LabRoomService lists the lab room reference data.
type LabRoomService interface {
	List(ctx context.Context) ([]dto.LabRoomResponse, error)
}

type labRoomService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLabRoomService creates the lab room service.
func NewLabRoomService(repo *repository.Repository, logger *zap.Logger) LabRoomService {
	return &labRoomService{repo: repo, logger: logger}
}

func (s *labRoomService) List(ctx context.Context) ([]dto.LabRoomResponse, error) {
	rooms, err := s.repo.LabRoom.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LabRoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, dto.LabRoomResponse{
			ID:        room.ID,
			Name:      room.Name,
			Capacity:  room.Capacity,
			CreatedAt: room.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}
