package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/bloodbank/internal/model"
)

// RecordRainfall adds a rainfall reading to the day's total.
func RecordRainfall(ctx context.Context, db *sql.DB, day model.Date, millimetres float64) error {
	if millimetres < 0 {
		return fmt.Errorf("rainfall must not be negative")
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO rainfall (day, millimetres) VALUES (?, ?)
		 ON CONFLICT (day) DO UPDATE SET millimetres = millimetres + excluded.millimetres`,
		day, millimetres,
	)
	if err != nil {
		return fmt.Errorf("recording rainfall: %w", err)
	}
	return nil
}

// ListRainfall returns one point per day from..to inclusive. Days without
// readings report zero.
func ListRainfall(ctx context.Context, db *sql.DB, from, to model.Date) ([]model.RainfallPoint, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT day, millimetres FROM rainfall WHERE day >= ? AND day <= ?`, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("listing rainfall: %w", err)
	}
	defer rows.Close()

	byDay := make(map[model.Date]float64)
	for rows.Next() {
		var day model.Date
		var mm float64
		if err := rows.Scan(&day, &mm); err != nil {
			return nil, fmt.Errorf("scanning rainfall: %w", err)
		}
		byDay[day] = mm
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing rainfall: %w", err)
	}

	var points []model.RainfallPoint
	for d := from; !to.Before(d); d = d.AddDays(1) {
		points = append(points, model.RainfallPoint{Date: d, Millimetres: byDay[d]})
	}
	return points, nil
}
