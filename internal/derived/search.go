package derived

import (
	"strings"

	"github.com/erazemk/bloodbank/internal/model"
)

// All is the "no filter" selection for the blood group, severity and
// status pickers.
const All = "all"

// FilterDonors matches search against name and blood group case-insensitively
// and against contact as typed, then restricts to bloodGroup unless it is All.
func FilterDonors(donors []model.Donor, search, bloodGroup string) []model.Donor {
	term := strings.ToLower(search)
	out := make([]model.Donor, 0, len(donors))
	for _, d := range donors {
		matches := strings.Contains(strings.ToLower(d.Name), term) ||
			strings.Contains(d.Contact, search) ||
			strings.Contains(strings.ToLower(d.BloodGroup), term)
		if !matches {
			continue
		}
		if bloodGroup != All && d.BloodGroup != bloodGroup {
			continue
		}
		out = append(out, d)
	}
	return out
}

// FilterHotspots matches search against location and ward, then restricts
// to severity unless it is All.
func FilterHotspots(hotspots []model.Hotspot, search, severity string) []model.Hotspot {
	term := strings.ToLower(search)
	out := make([]model.Hotspot, 0, len(hotspots))
	for _, h := range hotspots {
		matches := strings.Contains(strings.ToLower(h.Location), term) ||
			strings.Contains(strings.ToLower(h.Ward), term)
		if !matches {
			continue
		}
		if severity != All && string(h.Severity) != severity {
			continue
		}
		out = append(out, h)
	}
	return out
}

// FilterRequests restricts requests to status unless it is All.
func FilterRequests(requests []model.BloodRequest, status string) []model.BloodRequest {
	out := make([]model.BloodRequest, 0, len(requests))
	for _, r := range requests {
		if status == All || string(r.Status) == status {
			out = append(out, r)
		}
	}
	return out
}

// RequestCounts tallies requests per status for the admin page.
type RequestCounts struct {
	Pending  int
	Approved int
	Rejected int
}

// CountRequests tallies requests by status.
func CountRequests(requests []model.BloodRequest) RequestCounts {
	var c RequestCounts
	for _, r := range requests {
		switch r.Status {
		case model.RequestPending:
			c.Pending++
		case model.RequestApproved:
			c.Approved++
		case model.RequestRejected:
			c.Rejected++
		}
	}
	return c
}
