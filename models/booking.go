package models

import "time"

// Booking reserves a resource for a time window on one calendar day.
type Booking struct {
	ID            string `bson:"_id" json:"id"`
	InstitutionID string `bson:"institutionId" json:"institutionId"`
	UserID        string `bson:"userId" json:"userId"`
	ResourceID    string `bson:"resourceId" json:"resourceId"`
	// Date is the calendar day of the booking, stored as UTC midnight.
	Date time.Time `bson:"date" json:"date"`
	// StartTime and EndTime are "HH:MM" times of day.
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Active    *bool  `bson:"active,omitempty" json:"active,omitempty"`
}
