package deck

import (
	"fmt"
	"strings"
)

// Role is the discipline a resource card provides and a feature requires.
type Role string

const (
	Dev        Role = "DEV"
	PM         Role = "PM"
	UX         Role = "UX"
	Contractor Role = "CONTRACTOR"
)

// Roles that appear in feature requirements, in round-robin order.
var CoreRoles = []Role{Dev, PM, UX}

// AllRoles is every role a drawn resource card can have.
var AllRoles = []Role{Dev, PM, UX, Contractor}

// String returns the string representation of a role
func (r Role) String() string {
	return string(r)
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case Dev, PM, UX, Contractor:
		return true
	default:
		return false
	}
}

// Requirement is a minimum number of points of one role.
type Requirement struct {
	Role      Role `json:"role"`
	MinPoints int  `json:"minPoints"`
}

// FeatureCard is an immutable feature definition.
type FeatureCard struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	TotalPoints  int           `json:"totalPoints"`
	Requirements []Requirement `json:"requirements"`
}

// Difficulty is the sum of the card's requirement minimums.
func (f FeatureCard) Difficulty() int {
	total := 0
	for _, req := range f.Requirements {
		total += req.MinPoints
	}
	return total
}

// Requirement returns the minimum for role, and whether the card lists it.
func (f FeatureCard) Requirement(role Role) (int, bool) {
	for _, req := range f.Requirements {
		if req.Role == role {
			return req.MinPoints, true
		}
	}
	return 0, false
}

// Clone returns a copy that shares no memory with f.
func (f FeatureCard) Clone() FeatureCard {
	out := f
	out.Requirements = append([]Requirement(nil), f.Requirements...)
	return out
}

// String returns e.g. "Dark Mode [UX:2 DEV:1] 30pts"
func (f FeatureCard) String() string {
	parts := make([]string, len(f.Requirements))
	for i, req := range f.Requirements {
		parts[i] = fmt.Sprintf("%s:%d", req.Role, req.MinPoints)
	}
	return fmt.Sprintf("%s [%s] %dpts", f.Name, strings.Join(parts, " "), f.TotalPoints)
}
