package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/bloodbank/internal/model"
)

// CreateRequest records a new pending blood request.
func CreateRequest(ctx context.Context, db *sql.DB, in model.NewBloodRequest, requestedBy *int64) (*model.BloodRequest, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO requests (patient_name, age, blood_group, units_required, hospital_name, requested_by)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		in.PatientName, in.Age, in.BloodGroup, in.UnitsRequired, in.HospitalName, requestedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting request id: %w", err)
	}

	return GetRequest(ctx, db, id)
}

// GetRequest returns a request by ID.
func GetRequest(ctx context.Context, db *sql.DB, id int64) (*model.BloodRequest, error) {
	r := &model.BloodRequest{}
	err := db.QueryRowContext(ctx,
		`SELECT id, patient_name, age, blood_group, units_required, status, hospital_name
		 FROM requests WHERE id = ?`, id,
	).Scan(&r.ID, &r.PatientName, &r.Age, &r.BloodGroup, &r.UnitsRequired, &r.Status, &r.HospitalName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting request: %w", err)
	}
	return r, nil
}

// ListRequests returns all requests, newest first.
func ListRequests(ctx context.Context, db *sql.DB) ([]model.BloodRequest, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, patient_name, age, blood_group, units_required, status, hospital_name
		 FROM requests ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}
	defer rows.Close()

	var requests []model.BloodRequest
	for rows.Next() {
		var r model.BloodRequest
		if err := rows.Scan(&r.ID, &r.PatientName, &r.Age, &r.BloodGroup, &r.UnitsRequired, &r.Status, &r.HospitalName); err != nil {
			return nil, fmt.Errorf("scanning request: %w", err)
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

// UpdateRequestStatus moves a pending request to a terminal status. Approving
// deducts the requested units from non-expired stock of the same blood group,
// earliest expiry first, in the same transaction. Stock that reaches zero is
// kept as a zero-quantity record.
func UpdateRequestStatus(ctx context.Context, db *sql.DB, id int64, status model.RequestStatus, today model.Date) (*model.BloodRequest, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var current model.RequestStatus
	var group string
	var units int
	err = tx.QueryRowContext(ctx,
		`SELECT status, blood_group, units_required FROM requests WHERE id = ?`, id,
	).Scan(&current, &group, &units)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting request: %w", err)
	}

	if !model.CanTransition(current, status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current, status)
	}

	if status == model.RequestApproved {
		if err := deductStock(ctx, tx, group, units, today); err != nil {
			return nil, err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE requests SET status = ? WHERE id = ?`, status, id,
	); err != nil {
		return nil, fmt.Errorf("updating request status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing status change: %w", err)
	}

	return GetRequest(ctx, db, id)
}

type stockLot struct {
	id       int64
	quantity int
}

func deductStock(ctx context.Context, tx *sql.Tx, group string, units int, today model.Date) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, quantity FROM stock
		 WHERE blood_group = ? AND expiry_date >= ?
		 ORDER BY expiry_date, id`, group, today,
	)
	if err != nil {
		return fmt.Errorf("listing stock for %s: %w", group, err)
	}

	// Collect before updating; the connection cannot interleave.
	var lots []stockLot
	available := 0
	for rows.Next() {
		var l stockLot
		if err := rows.Scan(&l.id, &l.quantity); err != nil {
			rows.Close()
			return fmt.Errorf("scanning stock: %w", err)
		}
		lots = append(lots, l)
		available += l.quantity
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("listing stock for %s: %w", group, err)
	}

	if len(lots) == 0 {
		return fmt.Errorf("%w: %s", ErrBloodGroupNotFound, group)
	}
	if available < units {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientStock, available, units)
	}

	remaining := units
	for _, l := range lots {
		if remaining == 0 {
			break
		}
		take := min(l.quantity, remaining)
		if take == 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE stock SET quantity = quantity - ? WHERE id = ?`, take, l.id,
		); err != nil {
			return fmt.Errorf("deducting stock: %w", err)
		}
		remaining -= take
	}
	return nil
}
