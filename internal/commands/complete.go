package commands

import (
	"strings"
)

// Complete returns the display names starting with partial, ignoring case, in
// registration order without duplicates.
func (s *Snapshot) Complete(partial string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, d := range s.descriptors {
		name := s.DisplayName(d)
		if seen[name] || !hasPrefixFold(name, partial) {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// GroupNames returns the groups starting with partial, ignoring case.
func (s *Snapshot) GroupNames(partial string) []string {
	var out []string
	for _, g := range s.groups {
		if hasPrefixFold(g, partial) {
			out = append(out, g)
		}
	}
	return out
}

// CommonPrefixLength returns the length in runes of the longest prefix shared
// by every candidate. A single candidate yields its full length.
func CommonPrefixLength(candidates []string) int {
	if len(candidates) == 0 {
		return 0
	}

	prefix := []rune(candidates[0])
	for _, c := range candidates[1:] {
		runes := []rune(c)
		n := min(len(prefix), len(runes))
		i := 0
		for i < n && prefix[i] == runes[i] {
			i++
		}
		prefix = prefix[:i]
	}
	return len(prefix)
}

func hasPrefixFold(s, prefix string) bool {
	sr, pr := []rune(s), []rune(prefix)
	if len(pr) > len(sr) {
		return false
	}
	return strings.EqualFold(string(sr[:len(pr)]), prefix)
}
