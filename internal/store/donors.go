package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/bloodbank/internal/model"
)

const donorColumns = `id, name, age, gender, blood_group, contact, last_donation`

// CreateDonor registers a donor.
func CreateDonor(ctx context.Context, db *sql.DB, in model.NewDonor) (*model.Donor, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO donors (name, age, gender, blood_group, contact, last_donation)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		in.Name, in.Age, in.Gender, in.BloodGroup, in.Contact, in.LastDonation,
	)
	if err != nil {
		return nil, fmt.Errorf("creating donor: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting donor id: %w", err)
	}

	return GetDonor(ctx, db, id)
}

// GetDonor returns a donor by ID.
func GetDonor(ctx context.Context, db *sql.DB, id int64) (*model.Donor, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+donorColumns+` FROM donors WHERE id = ?`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("getting donor: %w", err)
	}
	defer rows.Close()

	donors, err := scanDonors(rows)
	if err != nil {
		return nil, err
	}
	if len(donors) == 0 {
		return nil, nil
	}
	return &donors[0], nil
}

// ListDonors returns all donors ordered by name.
func ListDonors(ctx context.Context, db *sql.DB) ([]model.Donor, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+donorColumns+` FROM donors ORDER BY name, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing donors: %w", err)
	}
	defer rows.Close()

	return scanDonors(rows)
}

// CountDonors returns the number of registered donors.
func CountDonors(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM donors`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting donors: %w", err)
	}
	return n, nil
}

// UpdateDonor replaces a donor's details.
func UpdateDonor(ctx context.Context, db *sql.DB, id int64, in model.NewDonor) error {
	result, err := db.ExecContext(ctx,
		`UPDATE donors SET name = ?, age = ?, gender = ?, blood_group = ?, contact = ?, last_donation = ?
		 WHERE id = ?`,
		in.Name, in.Age, in.Gender, in.BloodGroup, in.Contact, in.LastDonation, id,
	)
	if err != nil {
		return fmt.Errorf("updating donor: %w", err)
	}
	return requireAffected(result)
}

// DeleteDonor removes a donor.
func DeleteDonor(ctx context.Context, db *sql.DB, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM donors WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting donor: %w", err)
	}
	return requireAffected(result)
}

func scanDonors(rows *sql.Rows) ([]model.Donor, error) {
	var donors []model.Donor
	for rows.Next() {
		var d model.Donor
		var last model.Date
		if err := rows.Scan(&d.ID, &d.Name, &d.Age, &d.Gender, &d.BloodGroup, &d.Contact, &last); err != nil {
			return nil, fmt.Errorf("scanning donor: %w", err)
		}
		if !last.IsZero() {
			d.LastDonation = &last
		}
		donors = append(donors, d)
	}
	return donors, rows.Err()
}
