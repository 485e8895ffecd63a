package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User is the authenticated identity supplied by the auth collaborator.
// Passwords are plain strings compared by equality; real credential storage
// is out of scope.
type User struct {
	ID       string
	Username string
	Password string
	Role     Role
}
