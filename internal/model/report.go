package model

import "time"

// Report is a citizen's water-logging report, optionally with a photo.
type Report struct {
	ID            int64        `json:"id"`
	Location      string       `json:"location"`
	Description   string       `json:"description"`
	Severity      Severity     `json:"severity"`
	Status        ReportStatus `json:"status"`
	ReporterEmail string       `json:"reporterEmail,omitempty"`
	HasImage      bool         `json:"hasImage"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// ReportStatus is the review state of a Report.
type ReportStatus string

// Report statuses.
const (
	ReportPending  ReportStatus = "PENDING"
	ReportVerified ReportStatus = "VERIFIED"
	ReportResolved ReportStatus = "RESOLVED"
)

// ParseReportStatus validates a report status string.
func ParseReportStatus(s string) (ReportStatus, error) {
	switch st := ReportStatus(s); st {
	case ReportPending, ReportVerified, ReportResolved:
		return st, nil
	}
	return "", invalid("status", "unknown report status %q", s)
}

// Validate checks a report received from the backend.
func (r Report) Validate() error {
	if r.ID <= 0 {
		return invalid("id", "must be positive")
	}
	if _, err := ParseReportStatus(string(r.Status)); err != nil {
		return err
	}
	return required("location", r.Location)
}

// NewReport is the body of a report submission.
type NewReport struct {
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Validate checks a submission before it is sent.
func (r NewReport) Validate() error {
	if err := required("location", r.Location); err != nil {
		return err
	}
	_, err := ParseSeverity(string(r.Severity))
	return err
}
