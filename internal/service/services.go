package service

import (
	"github.com/MKhiriev/skillfade/internal/config"
	"github.com/MKhiriev/skillfade/internal/logger"
	"github.com/MKhiriev/skillfade/internal/store"
)

// Services bundles every application service for injection into the
// transport layer.
type Services struct {
	AuthService  AuthService
	SkillService SkillService
}

// NewServices constructs all services on top of the given storages.
func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.App, logger),
		SkillService: NewSkillService(storages.SkillRepository, logger),
	}
}
