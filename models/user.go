// models/user.go
package models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a platform user. Username and Password never leave the
// service layer on reads.
type User struct {
	ID            string `bson:"_id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Email         string `bson:"email" json:"email"`
	Phone         string `bson:"phone" json:"phone"`
	Role          string `bson:"role" json:"role"`
	Username      string `bson:"username" json:"username,omitempty"`
	Password      string `bson:"password" json:"password,omitempty"` // bcrypt hash at rest
	InstitutionID string `bson:"institutionId" json:"institutionId"`
}

// StripCredentials clears the login fields before a user is returned to a caller.
func (u *User) StripCredentials() {
	u.Username = ""
	u.Password = ""
}
