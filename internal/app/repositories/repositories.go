package repositories

import (
	"github.com/akshay/schoolms/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository   *AdminRepository
	CourseRepository  *CourseRepository
	StudentRepository *StudentRepository
	SessionRepository *SessionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		AdminRepository:   NewAdminRepository(database.Pool),
		CourseRepository:  NewCourseRepository(database.Pool),
		StudentRepository: NewStudentRepository(database),
		SessionRepository: NewSessionRepository(database.Pool),
	}
}
