package employers

import "time"

// Employer owns vacancies. PasswordHash never leaves the service layer.
type Employer struct {
	ID                    string    `json:"id"`
	Username              string    `json:"username"`
	Email                 string    `json:"email"`
	PasswordHash          string    `json:"-"`
	Location              string    `json:"location"`
	AdditionalContactInfo string    `json:"additionalContactInfo,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}
