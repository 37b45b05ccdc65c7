package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/bloodbank/internal/model"
)

// CreateHotspot adds a monitored location.
func CreateHotspot(ctx context.Context, db *sql.DB, h model.Hotspot) (*model.Hotspot, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO hotspots (location, ward, zone, severity, water_level) VALUES (?, ?, ?, ?, ?)`,
		h.Location, h.Ward, h.Zone, h.Severity, h.WaterLevel,
	)
	if err != nil {
		return nil, fmt.Errorf("creating hotspot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting hotspot id: %w", err)
	}

	return GetHotspot(ctx, db, id)
}

// GetHotspot returns a hotspot by ID.
func GetHotspot(ctx context.Context, db *sql.DB, id int64) (*model.Hotspot, error) {
	h := &model.Hotspot{}
	err := db.QueryRowContext(ctx,
		`SELECT id, location, ward, zone, severity, water_level, last_updated
		 FROM hotspots WHERE id = ?`, id,
	).Scan(&h.ID, &h.Location, &h.Ward, &h.Zone, &h.Severity, &h.WaterLevel, &h.LastUpdated)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting hotspot: %w", err)
	}
	return h, nil
}

// ListHotspots returns all hotspots, most severe first.
func ListHotspots(ctx context.Context, db *sql.DB) ([]model.Hotspot, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, location, ward, zone, severity, water_level, last_updated
		 FROM hotspots ORDER BY water_level DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing hotspots: %w", err)
	}
	defer rows.Close()

	var hotspots []model.Hotspot
	for rows.Next() {
		var h model.Hotspot
		if err := rows.Scan(&h.ID, &h.Location, &h.Ward, &h.Zone, &h.Severity, &h.WaterLevel, &h.LastUpdated); err != nil {
			return nil, fmt.Errorf("scanning hotspot: %w", err)
		}
		hotspots = append(hotspots, h)
	}
	return hotspots, rows.Err()
}

// UpdateHotspot replaces a hotspot's details and bumps its update time.
func UpdateHotspot(ctx context.Context, db *sql.DB, id int64, h model.Hotspot) error {
	result, err := db.ExecContext(ctx,
		`UPDATE hotspots SET location = ?, ward = ?, zone = ?, severity = ?, water_level = ?,
		        last_updated = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		h.Location, h.Ward, h.Zone, h.Severity, h.WaterLevel, id,
	)
	if err != nil {
		return fmt.Errorf("updating hotspot: %w", err)
	}
	return requireAffected(result)
}

// DeleteHotspot removes a hotspot.
func DeleteHotspot(ctx context.Context, db *sql.DB, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM hotspots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting hotspot: %w", err)
	}
	return requireAffected(result)
}
