package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/bloodbank/internal/model"
)

// ListStock returns all stock records, soonest expiry first.
func ListStock(ctx context.Context, db *sql.DB) ([]model.StockItem, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, blood_group, quantity, expiry_date
		 FROM stock ORDER BY expiry_date, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing stock: %w", err)
	}
	defer rows.Close()

	return scanStock(rows)
}

// GetStock returns a stock record by ID.
func GetStock(ctx context.Context, db *sql.DB, id int64) (*model.StockItem, error) {
	s := &model.StockItem{}
	err := db.QueryRowContext(ctx,
		`SELECT id, blood_group, quantity, expiry_date FROM stock WHERE id = ?`, id,
	).Scan(&s.ID, &s.BloodGroup, &s.Quantity, &s.ExpiryDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting stock: %w", err)
	}
	return s, nil
}

// CreateStock records a stock intake.
func CreateStock(ctx context.Context, db *sql.DB, in model.NewStock) (*model.StockItem, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO stock (blood_group, quantity, expiry_date) VALUES (?, ?, ?)`,
		in.BloodGroup, in.Quantity, in.ExpiryDate,
	)
	if err != nil {
		return nil, fmt.Errorf("creating stock: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting stock id: %w", err)
	}

	return GetStock(ctx, db, id)
}

// UpdateStockQuantity sets the quantity of a stock record.
func UpdateStockQuantity(ctx context.Context, db *sql.DB, id int64, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}

	result, err := db.ExecContext(ctx,
		`UPDATE stock SET quantity = ? WHERE id = ?`, quantity, id,
	)
	if err != nil {
		return fmt.Errorf("updating stock quantity: %w", err)
	}
	return requireAffected(result)
}

// DiscardStock removes a stock record and returns what was removed.
func DiscardStock(ctx context.Context, db *sql.DB, id int64) (*model.StockItem, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	s := &model.StockItem{}
	err = tx.QueryRowContext(ctx,
		`SELECT id, blood_group, quantity, expiry_date FROM stock WHERE id = ?`, id,
	).Scan(&s.ID, &s.BloodGroup, &s.Quantity, &s.ExpiryDate)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting stock: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM stock WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("discarding stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing discard: %w", err)
	}
	return s, nil
}

// DiscardExpired removes every record that expired before today and returns
// the number of records and units removed.
func DiscardExpired(ctx context.Context, db *sql.DB, today model.Date) (records, units int, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(quantity), 0) FROM stock WHERE expiry_date < ?`, today,
	).Scan(&records, &units)
	if err != nil {
		return 0, 0, fmt.Errorf("counting expired stock: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM stock WHERE expiry_date < ?`, today); err != nil {
		return 0, 0, fmt.Errorf("discarding expired stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("committing discard: %w", err)
	}
	return records, units, nil
}

func scanStock(rows *sql.Rows) ([]model.StockItem, error) {
	var items []model.StockItem
	for rows.Next() {
		var s model.StockItem
		if err := rows.Scan(&s.ID, &s.BloodGroup, &s.Quantity, &s.ExpiryDate); err != nil {
			return nil, fmt.Errorf("scanning stock: %w", err)
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
