// Package readings stores blood-pressure and temperature measurements.
// Readings carry no PII and are stored in clear, append-only.
package readings

import (
	"context"

	"github.com/dmitrijs2005/medregistry/internal/server/models"
)

type Repository interface {
	InsertPressure(ctx context.Context, p *models.PressureReading) (int64, error)
	InsertTemperature(ctx context.Context, t *models.TemperatureReading) (int64, error)

	// PressureByPatient and TemperatureByPatient return a patient's
	// readings ordered by acquisition timestamp descending (most recent
	// first).
	PressureByPatient(ctx context.Context, patientID int64) ([]models.PressureReading, error)
	TemperatureByPatient(ctx context.Context, patientID int64) ([]models.TemperatureReading, error)
}
