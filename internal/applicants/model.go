package applicants

import "time"

// Applicant submits applications. PasswordHash never leaves the service layer.
type Applicant struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Experience   string    `json:"experience"`
	Skills       string    `json:"skills"`
	CreatedAt    time.Time `json:"createdAt"`
}
