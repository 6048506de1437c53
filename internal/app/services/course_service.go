package services

import (
	"context"
	"fmt"

	"github.com/akshay/schoolms/internal/app/models"
	"github.com/akshay/schoolms/internal/app/repositories"
)

// CourseService handles read access to the course catalog
type CourseService struct {
	courseRepo repositories.ICourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.ICourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// GetByID retrieves a catalog entry
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetAll retrieves the full catalog
func (s *CourseService) GetAll(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}
