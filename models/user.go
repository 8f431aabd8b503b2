package models

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleOrganizer UserRole = "organizer"
	RolePlayer    UserRole = "player"
)

// CurrentUser is the identity extracted from a verified token.
type CurrentUser struct {
	ID   int      `json:"id"`
	Role UserRole `json:"role"`
}
