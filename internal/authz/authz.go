package authz

// Role is the closed set of principal kinds known to the system.
type Role string

const (
	RoleEmployer  Role = "employer"
	RoleApplicant Role = "applicant"
)

// ParseRole maps a raw claim value onto the closed role set.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleEmployer:
		return RoleEmployer, true
	case RoleApplicant:
		return RoleApplicant, true
	}
	return "", false
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	ID   string
	Name string
	Role Role
}

// Decision is the outcome of an ownership check. Absence and lack of
// ownership are deliberately distinct so handlers never swap 404 and 401.
type Decision int

const (
	Allow Decision = iota
	DenyNotFound
	DenyUnauthorized
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyNotFound:
		return "not_found"
	case DenyUnauthorized:
		return "unauthorized"
	}
	return "unknown"
}

// OwnedByEmployer authorizes view/mutation of an employer-owned resource.
// The existence check runs first: a missing resource is NotFound even for
// a principal that would not have owned it.
func OwnedByEmployer(p Principal, exists bool, ownerID string) Decision {
	if !exists {
		return DenyNotFound
	}
	if p.Role != RoleEmployer || p.ID == "" || p.ID != ownerID {
		return DenyUnauthorized
	}
	return Allow
}

// SelfApplicant authorizes an applicant viewing their own records by name.
func SelfApplicant(p Principal, exists bool, applicantName string) Decision {
	if !exists {
		return DenyNotFound
	}
	if p.Role != RoleApplicant || p.Name == "" || p.Name != applicantName {
		return DenyUnauthorized
	}
	return Allow
}

// RequireRole gates operations that are open to a whole role rather than an
// owner, e.g. applicants submitting applications.
func RequireRole(p Principal, role Role) Decision {
	if p.Role != role || p.ID == "" {
		return DenyUnauthorized
	}
	return Allow
}
