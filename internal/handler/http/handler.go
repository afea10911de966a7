// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/service"
)

type Handler struct {
	services *service.Services

	// allowedOrigins feeds the CORS middleware. Empty means any origin.
	allowedOrigins []string
	maxBodyBytes   int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cfg.CORSAllowedOrigins,
		maxBodyBytes:   cfg.MaxBodyBytes,
		logger:         logger,
	}
}
