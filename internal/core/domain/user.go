package domain

// User represents an application user. Every other entity is owned by
// exactly one user; deleting a user cascades through the storage layer.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Email        string `json:"email"` // Stored lower-cased
	PasswordHash string `json:"-"`
	FullName     string `json:"fullName"`
	AuditFields
}
