package user

// User is a row in the role-mapping table. The table is maintained outside
// this service; we only ever read it to resolve a verified email to a role.
type User struct {
	Email string `json:"email"`
	Role  string `json:"role"` // "Admin" or "User"
}
