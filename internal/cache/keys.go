package cache

import "time"

// Cache keys are deterministic strings derived from query shape so repeated
// identical queries hit the same entry. They are an internal performance
// contract, not a wire format.

const (
	KeyAllVacancies    = "all-vacancies"
	KeyAllApplicants   = "all-applicants"
	KeyAllApplications = "all-applications"
	KeyAllEmployers    = "all-employers"
)

// KeyVacancy keys a single vacancy by id or title.
func KeyVacancy(idOrTitle string) string {
	return "vacancy:" + idOrTitle
}

// KeyEmployer keys a single employer by id or name.
func KeyEmployer(idOrName string) string {
	return "employer:" + idOrName
}

// KeyApplicant keys a single applicant by id or name.
func KeyApplicant(idOrName string) string {
	return "applicant:" + idOrName
}

// KeyApplication keys a single application by id.
func KeyApplication(id string) string {
	return "application:" + id
}

// KeyApplicationsByApplicant keys an applicant's application history.
func KeyApplicationsByApplicant(name string) string {
	return "applications-by-applicant:" + name
}

// KeyApplicationsByDate keys applications submitted on a calendar day (UTC).
func KeyApplicationsByDate(day time.Time) string {
	return "applications-by-date:" + day.UTC().Format("2006-01-02")
}

// KeyArchivedVacancies keys an employer's archived listing. Scoped per
// employer so one employer's snapshot is never served to another.
func KeyArchivedVacancies(employerID string) string {
	return "archived-vacancies:" + employerID
}
