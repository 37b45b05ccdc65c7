package model

// Donor is a registered blood donor.
type Donor struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	BloodGroup   string `json:"bloodGroup"`
	Contact      string `json:"contact"`
	LastDonation *Date  `json:"lastDonation,omitempty"`
}

// Validate checks a donor received from the backend.
func (d Donor) Validate() error {
	if d.ID <= 0 {
		return invalid("id", "must be positive")
	}
	if err := required("name", d.Name); err != nil {
		return err
	}
	if err := required("bloodGroup", d.BloodGroup); err != nil {
		return err
	}
	if d.LastDonation != nil && !d.LastDonation.IsZero() && !d.LastDonation.Valid() {
		return invalid("lastDonation", "invalid date %q", d.LastDonation.String())
	}
	return nil
}

// NewDonor is the body of a donor registration.
type NewDonor struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	BloodGroup   string `json:"bloodGroup"`
	Contact      string `json:"contact"`
	LastDonation *Date  `json:"lastDonation"`
}

// Validate checks a registration before it is sent.
func (d NewDonor) Validate() error {
	if err := required("name", d.Name); err != nil {
		return err
	}
	if d.Age <= 0 {
		return invalid("age", "must be positive")
	}
	if err := required("gender", d.Gender); err != nil {
		return err
	}
	if err := ValidateBloodGroup(d.BloodGroup); err != nil {
		return err
	}
	if err := required("contact", d.Contact); err != nil {
		return err
	}
	if d.LastDonation != nil && !d.LastDonation.IsZero() && !d.LastDonation.Valid() {
		return invalid("lastDonation", "invalid date %q", d.LastDonation.String())
	}
	return nil
}
