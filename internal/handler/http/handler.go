// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and the server-rendered form pages.
// Tracing, logging, session decoding, and panic recovery are all handled at
// this layer before requests are forwarded to the service layer.
package http

import (
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/config"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/logger"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/service"
	"github.com/Monica-R-Kashyapa/kodnest-auth/internal/session"
)

// Handler owns all HTTP routes of the account application.
type Handler struct {
	services *service.Services
	sessions *session.Manager
	cfg      config.App

	logger *logger.Logger
}

// NewHandler constructs the transport layer over the given services and
// session manager.
func NewHandler(services *service.Services, sessions *session.Manager, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}
