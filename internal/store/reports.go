package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/bloodbank/internal/model"
)

const reportColumns = `id, location, description, severity, status, reporter_email,
	image IS NOT NULL AS has_image, created_at`

// CreateReport records a citizen report in PENDING status.
func CreateReport(ctx context.Context, db *sql.DB, in model.NewReport, reporterEmail string) (*model.Report, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO reports (location, description, severity, reporter_email) VALUES (?, ?, ?, ?)`,
		in.Location, in.Description, in.Severity, reporterEmail,
	)
	if err != nil {
		return nil, fmt.Errorf("creating report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting report id: %w", err)
	}

	return GetReport(ctx, db, id)
}

// GetReport returns a report by ID.
func GetReport(ctx context.Context, db *sql.DB, id int64) (*model.Report, error) {
	r := &model.Report{}
	err := db.QueryRowContext(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE id = ?`, id,
	).Scan(&r.ID, &r.Location, &r.Description, &r.Severity, &r.Status, &r.ReporterEmail, &r.HasImage, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting report: %w", err)
	}
	return r, nil
}

// ListReports returns reports, newest first, optionally filtered by status.
func ListReports(ctx context.Context, db *sql.DB, status model.ReportStatus) ([]model.Report, error) {
	var rows *sql.Rows
	var err error

	if status != "" {
		rows, err = db.QueryContext(ctx,
			`SELECT `+reportColumns+` FROM reports WHERE status = ? ORDER BY id DESC`, status,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT `+reportColumns+` FROM reports ORDER BY id DESC`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		var r model.Report
		if err := rows.Scan(&r.ID, &r.Location, &r.Description, &r.Severity, &r.Status, &r.ReporterEmail, &r.HasImage, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// UpdateReportStatus sets a report's review status.
func UpdateReportStatus(ctx context.Context, db *sql.DB, id int64, status model.ReportStatus) error {
	result, err := db.ExecContext(ctx,
		`UPDATE reports SET status = ? WHERE id = ?`, status, id,
	)
	if err != nil {
		return fmt.Errorf("updating report status: %w", err)
	}
	return requireAffected(result)
}

// SetReportImage stores a report's photo.
func SetReportImage(ctx context.Context, db *sql.DB, id int64, image []byte, mime string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE reports SET image = ?, image_mime = ? WHERE id = ?`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting report image: %w", err)
	}
	return requireAffected(result)
}

// GetReportImage returns a report's photo and MIME type. A report without a
// photo returns nil data.
func GetReportImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM reports WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting report image: %w", err)
	}
	return image, mime.String, nil
}
