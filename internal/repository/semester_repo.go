package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/JosiephousPierre/SELab-final/internal/model"
)

// SemesterRepository is the semesters data-access interface.
type SemesterRepository interface {
	Create(ctx context.Context, semester *model.Semester) error
	GetByID(ctx context.Context, id int64) (*model.Semester, error)
	List(ctx context.Context) ([]model.Semester, error)
	// ListByNames returns the semesters whose names match exactly; the
	// academic-term roller uses it to skip terms that already exist.
	ListByNames(ctx context.Context, names []string) ([]model.Semester, error)
	FirstActive(ctx context.Context) (*model.Semester, error)
	First(ctx context.Context) (*model.Semester, error)
}

type semesterRepo struct {
	db *gorm.DB
}

// NewSemesterRepo creates the gorm-backed SemesterRepository.
func NewSemesterRepo(db *gorm.DB) SemesterRepository {
	return &semesterRepo{db: db}
}

func (r *semesterRepo) Create(ctx context.Context, semester *model.Semester) error {
	return r.db.WithContext(ctx).Create(semester).Error
}

func (r *semesterRepo) GetByID(ctx context.Context, id int64) (*model.Semester, error) {
	var semester model.Semester
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&semester).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepo) List(ctx context.Context) ([]model.Semester, error) {
	var semesters []model.Semester
	err := r.db.WithContext(ctx).Order("id").Find(&semesters).Error
	return semesters, err
}

func (r *semesterRepo) ListByNames(ctx context.Context, names []string) ([]model.Semester, error) {
	var semesters []model.Semester
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&semesters).Error
	return semesters, err
}

func (r *semesterRepo) FirstActive(ctx context.Context) (*model.Semester, error) {
	var semester model.Semester
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		First(&semester).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepo) First(ctx context.Context) (*model.Semester, error) {
	var semester model.Semester
	err := r.db.WithContext(ctx).Order("id").First(&semester).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}
