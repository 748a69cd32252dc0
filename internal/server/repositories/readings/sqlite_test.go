package readings

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/medregistry/internal/server/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", "file:readings_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS pressure_readings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			systolic REAL NOT NULL,
			diastolic REAL NOT NULL,
			acquisition TEXT NOT NULL,
			entry_timestamp TEXT NOT NULL,
			patient_id INTEGER NOT NULL
		);
	`)
	require.NoError(t, err)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS temperature_readings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			value REAL NOT NULL,
			acquisition TEXT NOT NULL,
			entry_timestamp TEXT NOT NULL,
			patient_id INTEGER NOT NULL
		);
	`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM pressure_readings`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM temperature_readings`)
	require.NoError(t, err)

	return db
}

func TestPressure_InsertAndListOrdered(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	readings := []*models.PressureReading{
		{Systolic: 120, Diastolic: 80, Acquisition: "2024-05-10 08:30:00", EnteredAt: "2024-05-10 09:00:00", PatientID: 1},
		{Systolic: 130, Diastolic: 85, Acquisition: "2024-05-12 08:30:00", EnteredAt: "2024-05-12 09:00:00", PatientID: 1},
		{Systolic: 110, Diastolic: 70, Acquisition: "2024-05-11 08:30:00", EnteredAt: "2024-05-11 09:00:00", PatientID: 1},
		{Systolic: 140, Diastolic: 90, Acquisition: "2024-05-13 08:30:00", EnteredAt: "2024-05-13 09:00:00", PatientID: 2},
	}
	for _, p := range readings {
		_, err := repo.InsertPressure(ctx, p)
		require.NoError(t, err)
	}

	got, err := repo.PressureByPatient(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// most recent acquisition first
	assert.Equal(t, "2024-05-12 08:30:00", got[0].Acquisition)
	assert.Equal(t, "2024-05-11 08:30:00", got[1].Acquisition)
	assert.Equal(t, "2024-05-10 08:30:00", got[2].Acquisition)
	assert.Equal(t, 130.0, got[0].Systolic)
	assert.Equal(t, 85.0, got[0].Diastolic)
}

func TestTemperature_InsertAndListOrdered(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	readings := []*models.TemperatureReading{
		{Value: 36.6, Acquisition: "2024-05-10 08:30:00", EnteredAt: "2024-05-10 09:00:00", PatientID: 1},
		{Value: 38.2, Acquisition: "2024-05-12 08:30:00", EnteredAt: "2024-05-12 09:00:00", PatientID: 1},
	}
	for _, r := range readings {
		_, err := repo.InsertTemperature(ctx, r)
		require.NoError(t, err)
	}

	got, err := repo.TemperatureByPatient(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 38.2, got[0].Value)
	assert.Equal(t, 36.6, got[1].Value)
}

func TestReadings_EmptyForUnknownPatient(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	pressure, err := repo.PressureByPatient(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, pressure)

	temperature, err := repo.TemperatureByPatient(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, temperature)
}
