package model

// StockItem is one inventory record: a quantity of one blood group that
// expires on a calendar date.
type StockItem struct {
	ID         int64  `json:"id"`
	BloodGroup string `json:"bloodGroup"`
	Quantity   int    `json:"quantity"`
	ExpiryDate Date   `json:"expiryDate"`
}

// ExpiryStatus is derived from an expiry date and today; it is never stored.
type ExpiryStatus string

// Expiry statuses.
const (
	StatusExpired   ExpiryStatus = "expired"
	StatusExpiring  ExpiryStatus = "expiring"
	StatusAvailable ExpiryStatus = "available"
)

// StatusFilter selects stock by expiry status; FilterAll keeps everything.
type StatusFilter string

// FilterAll matches every status.
const FilterAll StatusFilter = "all"

// ExpiringWindowDays is the inclusive number of days before expiry during
// which stock counts as expiring.
const ExpiringWindowDays = 7

// StockSummary holds the aggregate counters shown above the stock table.
type StockSummary struct {
	TotalUnits          int `json:"totalUnits"`
	AvailableUnits      int `json:"availableUnits"`
	ExpiringUnits       int `json:"expiringUnits"`
	ExpiredUnits        int `json:"expiredUnits"`
	AvailableCategories int `json:"availableCategories"`
}

// Validate checks a stock record received from the backend.
func (s StockItem) Validate() error {
	if s.ID <= 0 {
		return invalid("id", "must be positive")
	}
	if err := required("bloodGroup", s.BloodGroup); err != nil {
		return err
	}
	if s.Quantity < 0 {
		return invalid("quantity", "must not be negative")
	}
	if !s.ExpiryDate.Valid() {
		return invalid("expiryDate", "invalid date %q", s.ExpiryDate.String())
	}
	return nil
}

// NewStock is the body of a stock intake.
type NewStock struct {
	BloodGroup string `json:"bloodGroup"`
	Quantity   int    `json:"quantity"`
	ExpiryDate Date   `json:"expiryDate"`
}

// Validate checks a stock intake before it is sent.
func (s NewStock) Validate() error {
	if err := ValidateBloodGroup(s.BloodGroup); err != nil {
		return err
	}
	if s.Quantity <= 0 {
		return invalid("quantity", "must be positive")
	}
	if !s.ExpiryDate.Valid() {
		return invalid("expiryDate", "required")
	}
	return nil
}
