package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Period bounds a report or listing. Nil ends are open.
type Period struct {
	From *time.Time
	To   *time.Time
}
