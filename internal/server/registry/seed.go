package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/medregistry/internal/dbx"
)

type demoTemperature struct {
	value                          float64
	year, month, day, hour, minute int
}

type demoPressure struct {
	systolic, diastolic            float64
	year, month, day, hour, minute int
}

type demoPatient struct {
	username, password  string
	lastName, firstName string
	birthYear           int
	birthMonth          time.Month
	birthDay            int
	temperatures        []demoTemperature
	pressures           []demoPressure
}

var demoPatients = []demoPatient{
	{
		username: "admin", password: "admin",
		lastName: "Mamut", firstName: "Andrzej",
		birthYear: 1985, birthMonth: time.September, birthDay: 4,
		temperatures: []demoTemperature{
			{36.7, 2021, 12, 12, 16, 31},
			{37.8, 2021, 12, 12, 18, 14},
			{39.1, 2021, 11, 1, 7, 11},
		},
		pressures: []demoPressure{
			{119.8, 76.6, 2021, 12, 12, 16, 24},
			{124.5, 81.2, 2021, 12, 12, 19, 11},
			{122.0, 79.1, 2021, 4, 5, 11, 11},
		},
	},
	{
		username: "jan", password: "kowalski63",
		lastName: "Kowalski", firstName: "Jan",
		birthYear: 1963, birthMonth: time.October, birthDay: 2,
		temperatures: []demoTemperature{
			{36.7, 2017, 2, 1, 13, 12},
			{37.8, 2021, 12, 12, 18, 14},
			{39.1, 2020, 9, 1, 10, 20},
		},
		pressures: []demoPressure{
			{119.8, 76.6, 2021, 12, 12, 16, 24},
			{124.5, 81.2, 2021, 12, 12, 19, 11},
			{122.0, 79.1, 2021, 4, 5, 11, 11},
		},
	},
	{
		username: "anna", password: "nowak81",
		lastName: "Nowak", firstName: "Anna",
		birthYear: 1981, birthMonth: time.February, birthDay: 28,
		temperatures: []demoTemperature{
			{35.5, 2019, 4, 10, 4, 8},
			{36.6, 2020, 12, 31, 23, 59},
			{40.2, 2021, 3, 17, 7, 47},
		},
		pressures: []demoPressure{
			{130.0, 91.2, 2019, 4, 10, 4, 10},
			{124.5, 81.2, 2021, 1, 1, 0, 3},
			{134.5, 91.0, 2021, 3, 17, 7, 50},
		},
	},
}

// Seed loads the demo patients the registry ships with for manual testing.
// It is a no-op unless the credentials table is empty.
func (s *Service) Seed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	repos := s.mgr.Bind(s.mgr.DB())

	n, err := repos.Credentials.Count(ctx)
	if err != nil {
		return fmt.Errorf("credential count failed: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, d := range demoPatients {
		if err := s.seedPatient(ctx, d); err != nil {
			return fmt.Errorf("demo seed failed for %s: %w", d.username, err)
		}
	}

	s.logger.Info(ctx, "demo data loaded", "patients", len(demoPatients))
	return nil
}

func (s *Service) seedPatient(ctx context.Context, d demoPatient) error {
	return dbx.WithTx(ctx, s.mgr.DB(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		repos := s.mgr.Bind(tx)

		credID, key, err := s.register(ctx, repos, d.username, d.password)
		if err != nil {
			return err
		}

		dob := time.Date(d.birthYear, d.birthMonth, d.birthDay, 0, 0, 0, 0, time.Local)
		patientID, err := s.insertPatient(ctx, repos, d.lastName, d.firstName, dob, credID, key)
		if err != nil {
			return err
		}

		for _, r := range d.temperatures {
			acq := time.Date(r.year, time.Month(r.month), r.day, r.hour, r.minute, 0, 0, time.Local)
			if err := s.addTemperature(ctx, repos, patientID, key, r.value, acq); err != nil {
				return err
			}
		}
		for _, r := range d.pressures {
			acq := time.Date(r.year, time.Month(r.month), r.day, r.hour, r.minute, 0, 0, time.Local)
			if err := s.addPressure(ctx, repos, patientID, key, r.systolic, r.diastolic, acq); err != nil {
				return err
			}
		}

		return nil
	})
}
