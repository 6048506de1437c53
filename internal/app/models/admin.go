package models

// Admin represents an administrator account. Admins are created at seed time
// or through the add-admin operation and are never updated or deleted.
type Admin struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
