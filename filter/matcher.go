// Package filter decides which directories and files are visible in a
// generated tree.
package filter

import (
	"strings"

	"github.com/temirov/lstree/internal/utils"
)

const pathSegmentSeparator = "/"

// MatchesIncludeSpec reports whether candidatePath satisfies an include-only
// directory spec. A spec is a plain directory name or a slash-delimited
// relative subpath such as "src/lib". The suffix form is evaluated first; the
// segment-anchor form second, whichever succeeds first wins. Matching is
// case-insensitive and separator-agnostic.
func MatchesIncludeSpec(candidatePath string, includeSpec string) bool {
	normalizedCandidate := utils.NormalizePath(candidatePath)
	normalizedSpec := strings.Trim(utils.NormalizePath(includeSpec), pathSegmentSeparator)
	if normalizedSpec == "" {
		return false
	}

	if strings.HasSuffix(normalizedCandidate, normalizedSpec) ||
		strings.HasSuffix(normalizedCandidate, pathSegmentSeparator+normalizedSpec) {
		return true
	}

	return matchesSegmentAnchor(
		splitPathSegments(normalizedCandidate),
		splitPathSegments(normalizedSpec),
	)
}

// matchesSegmentAnchor locates the first candidate segment equal to the
// leading spec segment and verifies the remaining spec segments match
// positionally and contiguously from that anchor. Only the first anchor is
// tried, so "src/lib" matches ".../project/src/lib" but not ".../srclib".
func matchesSegmentAnchor(candidateSegments []string, specSegments []string) bool {
	if len(specSegments) == 0 {
		return false
	}

	anchorIndex := -1
	for segmentIndex, candidateSegment := range candidateSegments {
		if candidateSegment == specSegments[0] {
			anchorIndex = segmentIndex
			break
		}
	}
	if anchorIndex < 0 {
		return false
	}
	if anchorIndex+len(specSegments) > len(candidateSegments) {
		return false
	}

	for specOffset := 1; specOffset < len(specSegments); specOffset++ {
		if candidateSegments[anchorIndex+specOffset] != specSegments[specOffset] {
			return false
		}
	}
	return true
}

// splitPathSegments splits a normalized path into its non-empty segments.
func splitPathSegments(normalizedPath string) []string {
	rawSegments := strings.Split(normalizedPath, pathSegmentSeparator)
	segments := make([]string, 0, len(rawSegments))
	for _, rawSegment := range rawSegments {
		if rawSegment != "" {
			segments = append(segments, rawSegment)
		}
	}
	return segments
}
