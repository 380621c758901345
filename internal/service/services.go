package service

import (
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/logger"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/store"
)

// Services aggregates all business-layer services handed to the transport
// layer.
type Services struct {
	AuthService AuthService
}

// NewServices wires every service to its repositories.
func NewServices(userRepository store.UserRepository, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(userRepository, logger),
	}
}
