package authz

import "testing"

func TestOwnedByEmployer(t *testing.T) {
	owner := Principal{ID: "emp-1", Name: "acme", Role: RoleEmployer}
	other := Principal{ID: "emp-2", Name: "globex", Role: RoleEmployer}
	applicant := Principal{ID: "app-1", Name: "jane", Role: RoleApplicant}

	cases := []struct {
		name    string
		p       Principal
		exists  bool
		ownerID string
		want    Decision
	}{
		{"owner allowed", owner, true, "emp-1", Allow},
		{"other employer denied", other, true, "emp-1", DenyUnauthorized},
		{"applicant denied", applicant, true, "emp-1", DenyUnauthorized},
		{"missing resource is not found even for owner", owner, false, "emp-1", DenyNotFound},
		{"missing resource is not found for stranger", other, false, "emp-1", DenyNotFound},
		{"empty principal id denied", Principal{Role: RoleEmployer}, true, "", DenyUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := OwnedByEmployer(tc.p, tc.exists, tc.ownerID); got != tc.want {
				t.Fatalf("OwnedByEmployer = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSelfApplicant(t *testing.T) {
	jane := Principal{ID: "app-1", Name: "jane", Role: RoleApplicant}

	if got := SelfApplicant(jane, true, "jane"); got != Allow {
		t.Fatalf("own history = %v, want Allow", got)
	}
	if got := SelfApplicant(jane, true, "john"); got != DenyUnauthorized {
		t.Fatalf("someone else's history = %v, want DenyUnauthorized", got)
	}
	if got := SelfApplicant(jane, false, "john"); got != DenyNotFound {
		t.Fatalf("missing applicant = %v, want DenyNotFound", got)
	}
	employer := Principal{ID: "emp-1", Name: "jane", Role: RoleEmployer}
	if got := SelfApplicant(employer, true, "jane"); got != DenyUnauthorized {
		t.Fatalf("employer reading applicant history = %v, want DenyUnauthorized", got)
	}
}

func TestRequireRole(t *testing.T) {
	if got := RequireRole(Principal{ID: "a", Role: RoleApplicant}, RoleApplicant); got != Allow {
		t.Fatalf("applicant role = %v, want Allow", got)
	}
	if got := RequireRole(Principal{ID: "a", Role: RoleEmployer}, RoleApplicant); got != DenyUnauthorized {
		t.Fatalf("wrong role = %v, want DenyUnauthorized", got)
	}
	if got := RequireRole(Principal{Role: RoleApplicant}, RoleApplicant); got != DenyUnauthorized {
		t.Fatalf("missing id = %v, want DenyUnauthorized", got)
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole("employer"); !ok || r != RoleEmployer {
		t.Fatalf("ParseRole(employer) = %v %v", r, ok)
	}
	if r, ok := ParseRole("applicant"); !ok || r != RoleApplicant {
		t.Fatalf("ParseRole(applicant) = %v %v", r, ok)
	}
	if _, ok := ParseRole("admin"); ok {
		t.Fatalf("ParseRole(admin) should fail")
	}
}
