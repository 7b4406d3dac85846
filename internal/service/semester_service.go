package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/JosiephousPierre/SELab-final/internal/dto"
	"github.com/JosiephousPierre/SELab-final/internal/model"
	"github.com/JosiephousPierre/SELab-final/internal/repository"
)

// SemesterService manages academic terms, including rolling the next academic
// year forward when a Summer term's schedule gets approved.
type SemesterService interface {
	List(ctx context.Context) ([]dto.SemesterResponse, error)
	Create(ctx context.Context, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error)
	// RollForward inserts the next academic year's three terms after a Summer
	// semester is approved. Idempotent: terms that already exist are skipped.
	// Non-Summer semesters and unparseable names are ignored without error.
	RollForward(ctx context.Context, semesterID int64, actingUserID *string, clientIP string) error
}

type semesterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSemesterService creates the semester service.
func NewSemesterService(repo *repository.Repository, logger *zap.Logger) SemesterService {
	return &semesterService{repo: repo, logger: logger}
}

func (s *semesterService) List(ctx context.Context) ([]dto.SemesterResponse, error) {
	semesters, err := s.repo.Semester.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SemesterResponse, 0, len(semesters))
	for i := range semesters {
		out = append(out, toSemesterResponse(&semesters[i]))
	}
	return out, nil
}

func (s *semesterService) Create(ctx context.Context, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error) {
	existing, err := s.repo.Semester.ListByNames(ctx, []string{req.Name})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrSemesterExists
	}

	sem := &model.Semester{Name: req.Name, IsActive: true}
	if err := s.repo.Semester.Create(ctx, sem); err != nil {
		return nil, err
	}

	resp := toSemesterResponse(sem)
	return &resp, nil
}

func (s *semesterService) RollForward(ctx context.Context, semesterID int64, actingUserID *string, clientIP string) error {
	sem, err := s.repo.Semester.GetByID(ctx, semesterID)
	if err != nil {
		if isNotFound(err) {
			s.logger.Warn("roll forward skipped: semester not found", zap.Int64("semester_id", semesterID))
			return nil
		}
		return err
	}

	if !strings.Contains(sem.Name, "Summer") {
		return nil
	}

	year, ok := trailingYear(sem.Name)
	if !ok {
		s.logger.Warn("roll forward skipped: no trailing year in semester name",
			zap.String("name", sem.Name))
		return nil
	}

	names := []string{
		fmt.Sprintf("1st Sem %d-%d", year, year+1),
		fmt.Sprintf("2nd Sem %d-%d", year, year+1),
		fmt.Sprintf("Summer %d", year+1),
	}

	existing, err := s.repo.Semester.ListByNames(ctx, names)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, e := range existing {
		have[e.Name] = true
	}

	created := 0
	for _, name := range names {
		if have[name] {
			continue
		}
		if err := s.repo.Semester.Create(ctx, &model.Semester{Name: name, IsActive: true}); err != nil {
			return err
		}
		created++
	}

	if created == 0 {
		return nil
	}
	s.logger.Info("next academic year semesters added",
		zap.Int("created", created),
		zap.String("after", sem.Name))

	// Audit only when the acting user resolves; the roller runs from approval
	// flows where the actor may be a service identity.
	if actingUserID != nil && *actingUserID != "" {
		if _, err := s.repo.User.GetByID(ctx, *actingUserID); err == nil {
			recordAudit(ctx, s.repo, s.logger, actingUserID, "ADD_NEXT_YEAR_SEMESTERS",
				fmt.Sprintf("Added next academic year semesters after approving %s", sem.Name), clientIP)
		} else {
			s.logger.Debug("roll forward audit skipped: acting user not found",
				zap.String("user_id", *actingUserID))
		}
	}

	return nil
}

// trailingYear extracts the 4-digit year at the end of a semester name like
// "Summer 2026".
func trailingYear(name string) (int, bool) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return 0, false
	}
	year, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil || year < 1000 || year > 9999 {
		return 0, false
	}
	return year, true
}

func toSemesterResponse(sem *model.Semester) dto.SemesterResponse {
	return dto.SemesterResponse{
		ID:        sem.ID,
		Name:      sem.Name,
		IsActive:  sem.IsActive,
		CreatedAt: sem.CreatedAt.Format(time.RFC3339),
	}
}
