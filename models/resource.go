package models

// Resource is a bookable item owned by an institution.
type Resource struct {
	ID            string `bson:"_id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Description   string `bson:"description" json:"description"`
	ImageURL      string `bson:"imageUrl" json:"imageUrl"`
	InstitutionID string `bson:"institutionId" json:"institutionId"`
}
