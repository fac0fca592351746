// Package authz contains the role-policy evaluation model: named policies
// mapping to allowed-role sets, and a pure decision function over the role
// claims of an already-validated token.
package authz

// Policy is a named rule listing the roles sufficient to perform a protected
// operation. Policies are built at startup and never mutated, so they are
// safe for unbounded concurrent readers.
type Policy struct {
	Name         string
	AllowedRoles []string
}

// The static policy table. Role lists are flat and explicit: Admin does not
// imply Viewer, so ViewerOrHigher names every role it accepts.
var (
	AdminOnly      = Policy{Name: "AdminOnly", AllowedRoles: []string{"Admin"}}
	UserOrAdmin    = Policy{Name: "UserOrAdmin", AllowedRoles: []string{"User", "Admin"}}
	ViewerOrHigher = Policy{Name: "ViewerOrHigher", AllowedRoles: []string{"Viewer", "User", "Admin"}}
)

// Policies returns the policy table keyed by name.
func Policies() map[string]Policy {
	return map[string]Policy{
		AdminOnly.Name:      AdminOnly,
		UserOrAdmin.Name:    UserOrAdmin,
		ViewerOrHigher.Name: ViewerOrHigher,
	}
}

// Decide reports whether tokenRoles satisfy policy: allow iff the
// intersection of the two sets is non-empty. Role comparison is exact and
// case-sensitive. Pure function, no I/O.
func Decide(tokenRoles []string, policy Policy) bool {
	if len(tokenRoles) == 0 || len(policy.AllowedRoles) == 0 {
		return false
	}

	have := make(map[string]struct{}, len(tokenRoles))
	for _, r := range tokenRoles {
		have[r] = struct{}{}
	}
	for _, allowed := range policy.AllowedRoles {
		if _, ok := have[allowed]; ok {
			return true
		}
	}
	return false
}
