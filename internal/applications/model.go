package applications

import "time"

// Application records one applicant's admission to one vacancy.
type Application struct {
	ID          string    `json:"id"`
	VacancyID   string    `json:"vacancyId"`
	ApplicantID string    `json:"applicantId"`
	AppliedAt   time.Time `json:"appliedAt"`
}

// cooldownWindow is the minimum gap between any two applications from the
// same applicant, across every vacancy on the board. An application at
// exactly the window boundary is admitted.
const cooldownWindow = 24 * time.Hour
