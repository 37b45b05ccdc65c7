// Package views renders console pages as plain-text tables and cards.
package views

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/erazemk/bloodbank/internal/derived"
	"github.com/erazemk/bloodbank/internal/model"
)

func newTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func units(n int) string {
	return humanize.Comma(int64(n))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// DaysLeft describes the days remaining until d.
func DaysLeft(d model.Date, now time.Time) string {
	days, ok := derived.DaysUntilExpiry(d, now)
	switch {
	case !ok:
		return "-"
	case days == 0:
		return "today"
	case days == 1:
		return "1 day"
	case days == -1:
		return "1 day ago"
	case days < 0:
		return fmt.Sprintf("%d days ago", -days)
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// Stock renders the inventory table with each record's expiry status.
func Stock(w io.Writer, items []model.StockItem, now time.Time) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No blood stock found.")
		return err
	}
	tw := newTable(w, "ID", "GROUP", "UNITS", "EXPIRES", "LEFT", "STATUS")
	for _, item := range items {
		row(tw,
			strconv.FormatInt(item.ID, 10),
			item.BloodGroup,
			units(item.Quantity),
			item.ExpiryDate.String(),
			DaysLeft(item.ExpiryDate, now),
			string(derived.ExpiryStatus(item.ExpiryDate, now)),
		)
	}
	return tw.Flush()
}

// StockSummary renders the counter cards above the inventory table.
func StockSummary(w io.Writer, s model.StockSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row(tw, "Total units:", units(s.TotalUnits))
	row(tw, "Available:", units(s.AvailableUnits))
	row(tw, "Expiring soon:", units(s.ExpiringUnits))
	row(tw, "Expired:", units(s.ExpiredUnits))
	row(tw, "Stocked records:", units(s.AvailableCategories))
	return tw.Flush()
}

// Donors renders the donor table.
func Donors(w io.Writer, donors []model.Donor) error {
	if len(donors) == 0 {
		_, err := fmt.Fprintln(w, "No donors found.")
		return err
	}
	tw := newTable(w, "ID", "NAME", "AGE", "GENDER", "GROUP", "CONTACT", "LAST DONATION")
	for _, d := range donors {
		last := "-"
		if d.LastDonation != nil && d.LastDonation.Valid() {
			last = d.LastDonation.String()
		}
		row(tw,
			strconv.FormatInt(d.ID, 10),
			d.Name,
			strconv.Itoa(d.Age),
			orDash(d.Gender),
			d.BloodGroup,
			orDash(d.Contact),
			last,
		)
	}
	return tw.Flush()
}

// Requests renders the blood request table.
func Requests(w io.Writer, requests []model.BloodRequest) error {
	if len(requests) == 0 {
		_, err := fmt.Fprintln(w, "No blood requests found.")
		return err
	}
	tw := newTable(w, "ID", "PATIENT", "GROUP", "UNITS", "HOSPITAL", "STATUS")
	for _, r := range requests {
		row(tw,
			strconv.FormatInt(r.ID, 10),
			orDash(r.PatientName),
			r.BloodGroup,
			units(r.UnitsRequired),
			orDash(r.HospitalName),
			string(r.Status),
		)
	}
	return tw.Flush()
}

// RequestCounts renders the per-status tallies of the admin page.
func RequestCounts(w io.Writer, c derived.RequestCounts) error {
	_, err := fmt.Fprintf(w, "Pending: %d  Approved: %d  Rejected: %d\n", c.Pending, c.Approved, c.Rejected)
	return err
}

// Dashboard renders the dashboard cards.
func Dashboard(w io.Writer, s model.DashboardStats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row(tw, "Registered donors:", units(s.TotalDonors))
	row(tw, "Available units:", units(s.AvailableUnits))
	row(tw, "Expiring within a week:", units(s.ExpiringUnits))
	return tw.Flush()
}

// Hotspots renders the hotspot table. Update times are shown relative to now.
func Hotspots(w io.Writer, hotspots []model.Hotspot, now time.Time) error {
	if len(hotspots) == 0 {
		_, err := fmt.Fprintln(w, "No hotspots found.")
		return err
	}
	tw := newTable(w, "ID", "LOCATION", "WARD", "ZONE", "SEVERITY", "WATER", "UPDATED")
	for _, h := range hotspots {
		row(tw,
			strconv.FormatInt(h.ID, 10),
			h.Location,
			orDash(h.Ward),
			orDash(h.Zone),
			string(h.Severity),
			fmt.Sprintf("%d%%", h.WaterLevel),
			ago(h.LastUpdated, now),
		)
	}
	return tw.Flush()
}

// Reports renders the citizen report table.
func Reports(w io.Writer, reports []model.Report, now time.Time) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(w, "No reports found.")
		return err
	}
	tw := newTable(w, "ID", "LOCATION", "SEVERITY", "STATUS", "PHOTO", "REPORTED")
	for _, r := range reports {
		photo := "no"
		if r.HasImage {
			photo = "yes"
		}
		row(tw,
			strconv.FormatInt(r.ID, 10),
			r.Location,
			orDash(string(r.Severity)),
			string(r.Status),
			photo,
			ago(r.CreatedAt, now),
		)
	}
	return tw.Flush()
}

func ago(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
