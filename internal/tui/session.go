package tui

import (
	"context"

	"github.com/MKhiriev/go-access-keeper/internal/logger"
	"github.com/MKhiriev/go-access-keeper/internal/utils"
)

// newSessionContext attaches a child logger tagged with a fresh session id,
// so every operation of one terminal session can be traced in the log file.
func newSessionContext(ctx context.Context, log *logger.Logger, ids *utils.UUIDGenerator) context.Context {
	child := log.GetChildLogger()
	child.Logger = child.With().Str("session_id", ids.Generate()).Logger()

	return child.WithContext(ctx)
}
