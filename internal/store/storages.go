package store

import "github.com/MKhiriev/skillfade/internal/logger"

// Storages bundles all repositories behind their interfaces for injection
// into the service layer.
type Storages struct {
	UserRepository  UserRepository
	SkillRepository SkillRepository
}

// NewStorages constructs every repository on top of the shared database
// connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		SkillRepository: NewSkillRepository(db, log),
	}
}
