// Package seed populates default data on first startup
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/akshay/schoolms/internal/app/models"
	"github.com/akshay/schoolms/internal/app/repositories"
	"github.com/akshay/schoolms/internal/pkg/auth"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// defaultCourses is the catalog installed into an empty database.
var defaultCourses = []models.Course{
	{Name: "B.Tech Computer Science", Duration: "4 years", TotalFees: 90000},
	{Name: "B.Tech Artificial Intelligence & Data Science", Duration: "4 years", TotalFees: 65000},
	{Name: "B.Tech Information Technology", Duration: "4 years", TotalFees: 45000},
	{Name: "B.Tech Electronics", Duration: "4 years", TotalFees: 40000},
	{Name: "B.Tech Mechanical", Duration: "4 years", TotalFees: 35000},
	{Name: "B.Tech Civil", Duration: "4 years", TotalFees: 30000},
	{Name: "M.Tech Computer Science", Duration: "2 years", TotalFees: 60000},
	{Name: "M.Tech Information Technology", Duration: "2 years", TotalFees: 55000},
	{Name: "M.Tech Electronics", Duration: "2 years", TotalFees: 50000},
	{Name: "M.Tech Mechanical", Duration: "2 years", TotalFees: 45000},
	{Name: "M.Tech Civil", Duration: "2 years", TotalFees: 40000},
}

// CreateDefaultData installs the default admin account and the course catalog
// if the corresponding tables are empty. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := repositories.NewAdminRepository(dbPool)
	courseRepo := repositories.NewCourseRepository(dbPool)

	var finalErr error

	adminCount, err := adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if adminCount == 0 {
		hash, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash default admin password: %w", err)
		}
		admin := &models.Admin{Username: defaultAdminUsername, PasswordHash: hash}
		if err := adminRepo.Create(ctx, admin); err != nil {
			lgr.Error().Err(err).Msg("Error creating default admin")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("username", defaultAdminUsername).Msg("Default admin created")
		}
	}

	courseCount, err := courseRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count courses: %w", err)
	}
	if courseCount == 0 {
		for i := range defaultCourses {
			course := defaultCourses[i]
			if err := courseRepo.Create(ctx, &course); err != nil {
				lgr.Error().Err(err).Str("course", course.Name).Msg("Error creating default course")
				finalErr = errors.Join(finalErr, err)
			}
		}
		lgr.Info().Int("count", len(defaultCourses)).Msg("Default course catalog created")
	}

	return finalErr
}
