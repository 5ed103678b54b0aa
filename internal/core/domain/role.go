package domain

import "strings"

// Role is an authorization tag attached to an operator session.
type Role string

const (
	RoleClerk   Role = "ROLE_CLERK"
	RoleManager Role = "ROLE_MGR"
)

// impliedRoles lists, for each role, the other roles it grants.
// A manager can do everything a clerk can.
var impliedRoles = map[Role][]Role{
	RoleManager: {RoleClerk},
}

// ParseRole maps a wire or short role name to a Role.
// The second return value is false for unknown names.
func ParseRole(s string) (Role, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleClerk), "CLERK":
		return RoleClerk, true
	case string(RoleManager), "MANAGER", "ROLE_MANAGER":
		return RoleManager, true
	default:
		return "", false
	}
}

// ParseRoles converts raw names into roles, dropping unknown and duplicate entries.
func ParseRoles(names []string) []Role {
	out := make([]Role, 0, len(names))
	seen := make(map[Role]struct{}, len(names))
	for _, n := range names {
		r, ok := ParseRole(n)
		if !ok {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// expand returns the role set closed over impliedRoles.
func expand(roles []Role) map[Role]struct{} {
	set := make(map[Role]struct{}, len(roles)*2)
	var add func(r Role)
	add = func(r Role) {
		if _, ok := set[r]; ok {
			return
		}
		set[r] = struct{}{}
		for _, implied := range impliedRoles[r] {
			add(implied)
		}
	}
	for _, r := range roles {
		add(r)
	}
	return set
}
