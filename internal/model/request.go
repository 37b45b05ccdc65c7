package model

// BloodRequest is a hospital's request for units of one blood group.
type BloodRequest struct {
	ID            int64         `json:"id"`
	PatientName   string        `json:"patientName"`
	Age           int           `json:"age,omitempty"`
	BloodGroup    string        `json:"bloodGroup"`
	UnitsRequired int           `json:"unitsRequired"`
	Status        RequestStatus `json:"status"`
	HospitalName  string        `json:"hospitalName"`
}

// RequestStatus is the lifecycle state of a BloodRequest.
type RequestStatus string

// Request statuses.
const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// ParseRequestStatus validates a request status string.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch st := RequestStatus(s); st {
	case RequestPending, RequestApproved, RequestRejected:
		return st, nil
	}
	return "", invalid("status", "unknown request status %q", s)
}

// CanTransition reports whether a request may move from one status to another.
// Only pending requests move, and only to a terminal state.
func CanTransition(from, to RequestStatus) bool {
	return from == RequestPending && (to == RequestApproved || to == RequestRejected)
}

// Validate checks a request received from the backend.
func (r BloodRequest) Validate() error {
	if r.ID <= 0 {
		return invalid("id", "must be positive")
	}
	if err := required("bloodGroup", r.BloodGroup); err != nil {
		return err
	}
	if r.UnitsRequired <= 0 {
		return invalid("unitsRequired", "must be positive")
	}
	if _, err := ParseRequestStatus(string(r.Status)); err != nil {
		return err
	}
	return nil
}

// NewBloodRequest is the body of a request submission.
type NewBloodRequest struct {
	PatientName   string `json:"patientName"`
	Age           int    `json:"age"`
	BloodGroup    string `json:"bloodGroup"`
	UnitsRequired int    `json:"unitsRequired"`
	HospitalName  string `json:"hospitalName"`
}

// Validate checks a request submission before it is sent.
func (r NewBloodRequest) Validate() error {
	if err := required("patientName", r.PatientName); err != nil {
		return err
	}
	if r.Age <= 0 {
		return invalid("age", "must be positive")
	}
	if err := ValidateBloodGroup(r.BloodGroup); err != nil {
		return err
	}
	if r.UnitsRequired <= 0 {
		return invalid("unitsRequired", "must be positive")
	}
	return required("hospitalName", r.HospitalName)
}
