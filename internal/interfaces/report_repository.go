package interfaces

import (
	"context"
	"time"

	"campaignadmin/internal/models"
)

type ReportRepository interface {
	// Find returns submissions joined with their campaign, oldest first.
	// now is the instant live redaction compares campaign end dates against.
	Find(ctx context.Context, filter models.ReportFilter, now time.Time) ([]models.ReportEntry, error)
}
