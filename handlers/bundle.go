// File: handlers/bundle.go
package handlers

import (
	"resourcebooking/services/auth"
	"resourcebooking/utils"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AuthService auth.AuthService
	// Health may be nil, in which case /health always reports ok.
	Health *utils.HealthMonitor

	Bookings     *BookingHandler
	Resources    *ResourceHandler
	Institutions *InstitutionHandler
	ErrorReports *ErrorReportHandler
	Users        *UserHandler
	Login        *LoginHandler
	Images       *ImageHandler
}
