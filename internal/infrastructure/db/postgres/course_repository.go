package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lead-service/internal/domain/entities"
	"lead-service/internal/domain/repositories"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) repositories.CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) FindById(ctx context.Context, id uint) (*entities.Course, error) {
	var courseModel CourseModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&courseModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.Course{
		Id:               courseModel.Id,
		Title:            courseModel.Title,
		Slug:             courseModel.Slug,
		BitrixCategoryId: courseModel.BitrixCategoryId,
	}, nil
}
