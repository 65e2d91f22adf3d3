package models

type Institution struct {
	ID              string `bson:"_id" json:"id"`
	Name            string `bson:"name" json:"name"`
	ImageURL        string `bson:"imageUrl" json:"imageUrl"`
	OpenTime        string `bson:"openTime" json:"openTime"`
	CloseTime       string `bson:"closeTime" json:"closeTime"`
	BookingInterval int    `bson:"bookingInterval" json:"bookingInterval"` // minutes
}
