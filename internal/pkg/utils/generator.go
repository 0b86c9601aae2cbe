package utils

import (
	"fmt"
	"glamslot-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateLedgerExportObjectName(now time.Time) string {
	return fmt.Sprintf("%s/%s.json", constvars.LedgerExportPrefix, now.UTC().Format(constvars.LedgerExportFileTime))
}
