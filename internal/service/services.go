package service

import (
	"github.com/MKhiriev/go-access-keeper/internal/config"
	"github.com/MKhiriev/go-access-keeper/internal/crypto"
	"github.com/MKhiriev/go-access-keeper/internal/logger"
	"github.com/MKhiriev/go-access-keeper/internal/metrics"
	"github.com/MKhiriev/go-access-keeper/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

type Services struct {
	AccessService AccessService

	// Registry holds the instruments of this manager instance.
	Registry *prometheus.Registry
}

// NewServices wires one access manager over storages. The manager owns its
// tables for its whole lifetime; there is no process-wide instance.
//
// Calls pass through metrics, then validation, then the manager itself.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	registry := prometheus.NewRegistry()

	core := NewAccessService(storages, crypto.NewCredentialService(cfg.Credentials), cfg.App, logger)
	validated := NewAccessValidationService().Wrap(core)
	measured := NewAccessMetricsService(metrics.NewAccessMetrics(registry)).Wrap(validated)

	return &Services{
		AccessService: measured,
		Registry:      registry,
	}
}
