package models

import "time"

// BookingStatRequest selects an institution's bookings between two dates, both inclusive.
type BookingStatRequest struct {
	InstitutionID string    `json:"institutionId" binding:"required"`
	StartDate     time.Time `json:"startDate" binding:"required"`
	EndDate       time.Time `json:"endDate" binding:"required"`
}

type PendingBookingsRequest struct {
	UserID      string    `json:"userId" binding:"required"`
	CurrentDate time.Time `json:"currentDate" binding:"required"`
}

type ResourceBookingsRequest struct {
	ResourceID string    `json:"resourceId" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
}
