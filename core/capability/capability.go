// Package capability defines the tag vocabulary agents use to advertise what
// kind of work they can perform. Tags are pure data: the runtime never
// branches on them, coordinators use them for matching.
package capability

import "sort"

// Capability is an opaque tag describing a kind of task an agent can perform.
type Capability string

const (
	CodeGeneration          Capability = "code_generation"
	CodeReview              Capability = "code_review"
	Debugging               Capability = "debugging"
	Testing                 Capability = "testing"
	Architecture            Capability = "architecture"
	SecurityAnalysis        Capability = "security_analysis"
	PerformanceOptimization Capability = "performance_optimization"
	Documentation           Capability = "documentation"
	DatabaseDesign          Capability = "database_design"
	APIDesign               Capability = "api_design"
	FrontendDevelopment     Capability = "frontend_development"
	BackendDevelopment      Capability = "backend_development"
	DevOps                  Capability = "devops"
	Planning                Capability = "planning"
	Reasoning               Capability = "reasoning"
)

var known = map[Capability]bool{
	CodeGeneration:          true,
	CodeReview:              true,
	Debugging:               true,
	Testing:                 true,
	Architecture:            true,
	SecurityAnalysis:        true,
	PerformanceOptimization: true,
	Documentation:           true,
	DatabaseDesign:          true,
	APIDesign:               true,
	FrontendDevelopment:     true,
	BackendDevelopment:      true,
	DevOps:                  true,
	Planning:                true,
	Reasoning:               true,
}

// IsValid reports whether s names one of the known capabilities.
func IsValid(s string) bool {
	return known[Capability(s)]
}

// Valid returns all known capabilities, sorted.
func Valid() []Capability {
	capes := make([]Capability, 0, len(known))
	for c := range known {
		capes = append(capes, c)
	}
	sort.Slice(capes, func(i, j int) bool { return capes[i] < capes[j] })
	return capes
}

// Set is an immutable collection of capabilities. Declaring the same tag
// twice is idempotent. The zero value is the empty set.
type Set struct {
	members map[Capability]bool
}

// NewSet builds a Set from the given tags. The set is fixed at construction.
func NewSet(capes ...Capability) Set {
	members := make(map[Capability]bool, len(capes))
	for _, c := range capes {
		members[c] = true
	}
	return Set{members: members}
}

// Has reports whether c is in the set.
func (s Set) Has(c Capability) bool {
	return s.members[c]
}

// Intersects reports whether the two sets share at least one capability.
func (s Set) Intersects(other Set) bool {
	small, large := s, other
	if len(other.members) < len(s.members) {
		small, large = other, s
	}
	for c := range small.members {
		if large.members[c] {
			return true
		}
	}
	return false
}

// List returns the members sorted. The returned slice is a copy.
func (s Set) List() []Capability {
	capes := make([]Capability, 0, len(s.members))
	for c := range s.members {
		capes = append(capes, c)
	}
	sort.Slice(capes, func(i, j int) bool { return capes[i] < capes[j] })
	return capes
}

// Len returns the number of distinct capabilities in the set.
func (s Set) Len() int {
	return len(s.members)
}
