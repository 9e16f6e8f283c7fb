package domain

import (
	"sort"

	identitydomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

// PermissionSet is the flat, deduplicated set of permission codes effective
// for an identity. Codes are stored lower-cased.
type PermissionSet map[string]struct{}

// NewPermissionSet returns an empty set.
func NewPermissionSet() PermissionSet {
	return make(PermissionSet)
}

// Add inserts a code after normalization. Blank codes are ignored.
func (s PermissionSet) Add(code string) {
	normalized := identitydomain.NormalizeCode(code)
	if normalized == "" {
		return
	}
	s[normalized] = struct{}{}
}

// Contains reports whether the set holds the given code. The code is
// normalized before lookup, so checks are case-insensitive.
func (s PermissionSet) Contains(code string) bool {
	_, ok := s[identitydomain.NormalizeCode(code)]
	return ok
}

// ContainsAny reports whether at least one of the codes is present. An empty
// input yields false.
func (s PermissionSet) ContainsAny(codes ...string) bool {
	for _, code := range codes {
		if s.Contains(code) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every code is present. An empty input yields
// true.
func (s PermissionSet) ContainsAll(codes ...string) bool {
	for _, code := range codes {
		if !s.Contains(code) {
			return false
		}
	}
	return true
}

// Codes returns the members sorted lexicographically.
func (s PermissionSet) Codes() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
