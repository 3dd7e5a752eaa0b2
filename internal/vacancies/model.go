package vacancies

import "time"

// State is the effective lifecycle state of a vacancy at a point in time.
// It is derived, never stored: persisting it would let a cached row keep
// reporting "open" after the expiry instant has passed.
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
)

// Vacancy is a posted position owned by one employer.
type Vacancy struct {
	ID              string    `json:"id"`
	EmployerID      string    `json:"employerId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	MaxApplications int       `json:"maxApplications"`
	ExpireAt        time.Time `json:"expireAt"`
	ArchivedAt      time.Time `json:"archivedAt"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

// StateAt resolves the vacancy's effective state at the given instant.
// A vacancy is open while its active flag is set and the expiry instant
// has not passed. At exactly ExpireAt it is still open.
func (v Vacancy) StateAt(now time.Time) State {
	if v.IsActive && !now.After(v.ExpireAt) {
		return StateOpen
	}
	return StateClosed
}

// Archived reports whether the vacancy has crossed its archival instant,
// which trails expiry by a short grace period.
func (v Vacancy) Archived(now time.Time) bool {
	return now.After(v.ArchivedAt)
}

// View is a vacancy as served to clients, with the state resolved against
// the clock of the request that produced it.
type View struct {
	Vacancy
	Status State `json:"status"`
}

// archivalGrace separates the instant applications stop being admitted
// from the instant the vacancy appears in archived listings.
const archivalGrace = time.Second

// archivedAtFor derives the archival instant from an expiry instant. It is
// recomputed whenever the expiry changes.
func archivedAtFor(expireAt time.Time) time.Time {
	return expireAt.Add(archivalGrace)
}
