package models

// Domain types

type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose in JSON
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

type Feedback struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Username string `json:"username"`
}
