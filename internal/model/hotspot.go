package model

import "time"

// Hotspot is a monitored water-logging location.
type Hotspot struct {
	ID          int64     `json:"id"`
	Location    string    `json:"location"`
	Ward        string    `json:"ward"`
	Zone        string    `json:"zone"`
	Severity    Severity  `json:"severity"`
	WaterLevel  int       `json:"waterLevel"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Severity grades a hotspot or a citizen report.
type Severity string

// Severities, mildest first.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Severities lists every severity, mildest first.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// ParseSeverity validates a severity string.
func ParseSeverity(s string) (Severity, error) {
	for _, sev := range Severities {
		if string(sev) == s {
			return sev, nil
		}
	}
	return "", invalid("severity", "unknown severity %q", s)
}

// Rank orders severities; unknown severities rank 0.
func (s Severity) Rank() int {
	for i, sev := range Severities {
		if sev == s {
			return i + 1
		}
	}
	return 0
}

// Escalate returns the next severity up, saturating at critical.
func (s Severity) Escalate() Severity {
	r := s.Rank()
	if r == 0 || r >= len(Severities) {
		return s
	}
	return Severities[r]
}

// Validate checks a hotspot received from the backend or built from input.
func (h Hotspot) Validate() error {
	if err := required("location", h.Location); err != nil {
		return err
	}
	if _, err := ParseSeverity(string(h.Severity)); err != nil {
		return err
	}
	if h.WaterLevel < 0 || h.WaterLevel > 100 {
		return invalid("waterLevel", "must be between 0 and 100")
	}
	return nil
}
