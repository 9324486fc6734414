package model

// Scope identifies the caller of a use case.
type Scope struct {
	UserID   string
	Username string
}
