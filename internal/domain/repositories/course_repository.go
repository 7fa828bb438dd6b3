package repositories

import (
	"context"

	"lead-service/internal/domain/entities"
)

type CourseRepository interface {
	FindById(ctx context.Context, id uint) (*entities.Course, error)
}
