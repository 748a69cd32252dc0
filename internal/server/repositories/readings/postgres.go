package readings

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/medregistry/internal/dbx"
	"github.com/dmitrijs2005/medregistry/internal/server/models"
)

// PostgresRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) InsertPressure(ctx context.Context, p *models.PressureReading) (int64, error) {
	query := `INSERT INTO pressure_readings (systolic, diastolic, acquisition, entry_timestamp, patient_id)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		p.Systolic, p.Diastolic, p.Acquisition, p.EnteredAt, p.PatientID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert pressure reading: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) InsertTemperature(ctx context.Context, t *models.TemperatureReading) (int64, error) {
	query := `INSERT INTO temperature_readings (value, acquisition, entry_timestamp, patient_id)
			VALUES ($1, $2, $3, $4) RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		t.Value, t.Acquisition, t.EnteredAt, t.PatientID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert temperature reading: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) PressureByPatient(ctx context.Context, patientID int64) ([]models.PressureReading, error) {
	query := `SELECT id, systolic, diastolic, acquisition, entry_timestamp, patient_id
			FROM pressure_readings WHERE patient_id = $1 ORDER BY acquisition DESC`

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

func (r *PostgresRepository) TemperatureByPatient(ctx context.Context, patientID int64) ([]models.TemperatureReading, error) {
	query := `SELECT id, value, acquisition, entry_timestamp, patient_id
			FROM temperature_readings WHERE patient_id = $1 ORDER BY acquisition DESC`

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
