/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package partition

import (
	"slices"
	"strings"
)

// Matcher decides membership over a token's original path segments.
type Matcher interface {
	Match(path []string) bool
	String() string
}

// SegmentMatcher tests a single path segment.
type SegmentMatcher interface {
	MatchSegment(seg string) bool
	String() string
}

// Is matches a segment equal to s.
func Is(s string) SegmentMatcher { return isSegment(s) }

type isSegment string

func (m isSegment) MatchSegment(seg string) bool { return seg == string(m) }
func (m isSegment) String() string               { return string(m) }

// StartsWithWord matches a segment whose first word is w, e.g.
// StartsWithWord("Font") matches "Font family" and "Font".
func StartsWithWord(w string) SegmentMatcher { return startsWithWord(w) }

type startsWithWord string

func (m startsWithWord) MatchSegment(seg string) bool {
	words := Words(seg)
	return len(words) > 0 && words[0] == string(m)
}
func (m startsWithWord) String() string { return string(m) + "*" }

// Sequence matches when consecutive segments satisfy each segment
// matcher in order, anywhere in the path.
func Sequence(seq ...SegmentMatcher) Matcher { return sequence(seq) }

type sequence []SegmentMatcher

func (m sequence) Match(path []string) bool {
	if len(m) == 0 {
		return false
	}
	for start := 0; start+len(m) <= len(path); start++ {
		ok := true
		for i, sm := range m {
			if !sm.MatchSegment(path[start+i]) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func (m sequence) String() string {
	parts := make([]string, len(m))
	for i, sm := range m {
		parts[i] = sm.String()
	}
	return strings.Join(parts, ".")
}

// AnyWord matches when some segment contains one of words as a whole word.
// Segments split into words at spaces, hyphens and underscores, so
// AnyWord("Text") matches "Text" and "Text secondary" but not "Context".
func AnyWord(words ...string) Matcher { return anyWord(words) }

type anyWord []string

func (m anyWord) Match(path []string) bool {
	for _, seg := range path {
		for _, w := range Words(seg) {
			if slices.Contains(m, w) {
				return true
			}
		}
	}
	return false
}

func (m anyWord) String() string { return "any(" + strings.Join(m, "|") + ")" }

// FirstNotIn matches when the first segment is none of names.
func FirstNotIn(names ...string) Matcher { return firstNotIn(names) }

type firstNotIn []string

func (m firstNotIn) Match(path []string) bool {
	return len(path) > 0 && !slices.Contains(m, path[0])
}

func (m firstNotIn) String() string { return "first!(" + strings.Join(m, "|") + ")" }

// Not inverts a matcher.
func Not(m Matcher) Matcher { return not{m} }

type not struct{ m Matcher }

func (n not) Match(path []string) bool { return !n.m.Match(path) }
func (n not) String() string           { return "!" + n.m.String() }

// AnyOf matches when any of ms matches.
func AnyOf(ms ...Matcher) Matcher { return anyOf(ms) }

type anyOf []Matcher

func (a anyOf) Match(path []string) bool {
	for _, m := range a {
		if m.Match(path) {
			return true
		}
	}
	return false
}

func (a anyOf) String() string {
	parts := make([]string, len(a))
	for i, m := range a {
		parts[i] = m.String()
	}
	return strings.Join(parts, " || ")
}

// Words splits a path segment into words at spaces, hyphens and underscores.
func Words(seg string) []string {
	return strings.FieldsFunc(seg, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
}
