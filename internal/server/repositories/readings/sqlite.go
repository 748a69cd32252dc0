package readings

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/medregistry/internal/dbx"
	"github.com/dmitrijs2005/medregistry/internal/server/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) InsertPressure(ctx context.Context, p *models.PressureReading) (int64, error) {
	query := `INSERT INTO pressure_readings (systolic, diastolic, acquisition, entry_timestamp, patient_id)
			VALUES (?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		p.Systolic, p.Diastolic, p.Acquisition, p.EnteredAt, p.PatientID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert pressure reading: %w", err)
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) InsertTemperature(ctx context.Context, t *models.TemperatureReading) (int64, error) {
	query := `INSERT INTO temperature_readings (value, acquisition, entry_timestamp, patient_id)
			VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		t.Value, t.Acquisition, t.EnteredAt, t.PatientID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert temperature reading: %w", err)
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) PressureByPatient(ctx context.Context, patientID int64) ([]models.PressureReading, error) {
	query := `SELECT id, systolic, diastolic, acquisition, entry_timestamp, patient_id
			FROM pressure_readings WHERE patient_id = ? ORDER BY acquisition DESC`

	rows, err := r.db.QueryContext(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to select pressure readings: %w", err)
	}
	defer rows.Close()

	var result []models.PressureReading
	for rows.Next() {
		var item models.PressureReading
		if err := rows.Scan(&item.ID, &item.Systolic, &item.Diastolic,
			&item.Acquisition, &item.EnteredAt, &item.PatientID); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) TemperatureByPatient(ctx context.Context, patientID int64) ([]models.TemperatureReading, error) {
	query := `SELECT id, value, acquisition, entry_timestamp, patient_id
			FROM temperature_readings WHERE patient_id = ? ORDER BY acquisition DESC`

	rows, err := r.db.QueryContext(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to select temperature readings: %w", err)
	}
	defer rows.Close()

	var result []models.TemperatureReading
	for rows.Next() {
		var item models.TemperatureReading
		if err := rows.Scan(&item.ID, &item.Value,
			&item.Acquisition, &item.EnteredAt, &item.PatientID); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
