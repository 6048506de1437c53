package models

// Course represents a catalog entry students enroll against. Duration is a
// free-text descriptor such as "4 years". TotalFees is the listed fee before
// any per-student discount.
type Course struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Duration    string     `json:"duration"`
	TotalFees   float64    `json:"total_fees"`
	Description string     `json:"description,omitempty"`
	Students    []*Student `json:"students,omitempty"`
}
