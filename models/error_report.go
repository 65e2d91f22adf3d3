package models

import "time"

// ErrorReport is a user-filed fault on a resource. It is active until resolved.
type ErrorReport struct {
	ID            string    `bson:"_id" json:"id"`
	ResourceID    string    `bson:"resourceId" json:"resourceId"`
	UserID        string    `bson:"userId" json:"userId"`
	InstitutionID string    `bson:"institutionId" json:"institutionId"`
	CreatedDate   time.Time `bson:"createdDate" json:"createdDate"`
	Description   string    `bson:"description" json:"description"`
	Resolved      bool      `bson:"resolved" json:"resolved"`
}

// ResourceHealth summarises whether a resource has open error reports.
type ResourceHealth struct {
	ResourceID string `json:"resourceId"`
	Active     bool   `json:"active"`
}
