package derived

import (
	"strings"
	"time"

	"github.com/erazemk/bloodbank/internal/model"
)

// FilterStock keeps the items whose blood group contains search
// (case-insensitive; empty matches all) and whose expiry status matches
// filter. Order is preserved.
func FilterStock(items []model.StockItem, search string, filter model.StatusFilter, now time.Time) []model.StockItem {
	term := strings.ToLower(search)
	out := make([]model.StockItem, 0, len(items))
	for _, item := range items {
		if !strings.Contains(strings.ToLower(item.BloodGroup), term) {
			continue
		}
		if filter != model.FilterAll && model.StatusFilter(ExpiryStatus(item.ExpiryDate, now)) != filter {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Aggregate sums quantities by expiry status. AvailableCategories counts
// records with a positive quantity, so two O+ rows count twice.
func Aggregate(items []model.StockItem, now time.Time) model.StockSummary {
	var s model.StockSummary
	for _, item := range items {
		s.TotalUnits += item.Quantity
		switch ExpiryStatus(item.ExpiryDate, now) {
		case model.StatusExpired:
			s.ExpiredUnits += item.Quantity
		case model.StatusExpiring:
			s.ExpiringUnits += item.Quantity
		default:
			s.AvailableUnits += item.Quantity
		}
		if item.Quantity > 0 {
			s.AvailableCategories++
		}
	}
	return s
}

// ExpiringWithin returns items with 0 to days (inclusive) days left.
func ExpiringWithin(items []model.StockItem, days int, now time.Time) []model.StockItem {
	out := make([]model.StockItem, 0, len(items))
	for _, item := range items {
		if left, ok := DaysUntilExpiry(item.ExpiryDate, now); ok && left >= 0 && left <= days {
			out = append(out, item)
		}
	}
	return out
}

// Expired returns items whose expiry date has passed.
func Expired(items []model.StockItem, now time.Time) []model.StockItem {
	out := make([]model.StockItem, 0, len(items))
	for _, item := range items {
		if ExpiryStatus(item.ExpiryDate, now) == model.StatusExpired {
			out = append(out, item)
		}
	}
	return out
}
