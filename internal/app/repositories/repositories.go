package repositories

import (
	"github.com/pragati-coe/facultyhub/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	FacultyRepository       *FacultyRepository
	QualificationRepository *QualificationRepository
	PublicationRepository   *PublicationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(store *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(store.Pool),
		FacultyRepository:       NewFacultyRepository(store.Pool),
		QualificationRepository: NewQualificationRepository(store),
		PublicationRepository:   NewPublicationRepository(store.Pool),
	}
}
