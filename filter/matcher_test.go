package filter_test

import (
	"testing"

	"github.com/temirov/lstree/filter"
)

// TestMatchesIncludeSpec verifies suffix and segment-anchor matching of
// include-only directory specs.
func TestMatchesIncludeSpec(testingInstance *testing.T) {
	testCases := []struct {
		testName      string
		candidatePath string
		includeSpec   string
		expected      bool
	}{
		{
			testName:      "exact name suffix",
			candidatePath: "/home/user/project/src",
			includeSpec:   "src",
			expected:      true,
		},
		{
			testName:      "multi segment suffix",
			candidatePath: "/home/user/project/src/lib",
			includeSpec:   "src/lib",
			expected:      true,
		},
		{
			testName:      "multi segment anchor in the middle",
			candidatePath: "/home/user/project/src/lib/internal",
			includeSpec:   "src/lib",
			expected:      true,
		},
		{
			testName:      "joined name is not a segment match",
			candidatePath: "/home/user/project/srclib",
			includeSpec:   "src/lib",
			expected:      false,
		},
		{
			testName:      "non contiguous segments do not match",
			candidatePath: "/home/user/src/project/lib",
			includeSpec:   "src/lib",
			expected:      false,
		},
		{
			testName:      "spec longer than remaining segments",
			candidatePath: "/home/user/src",
			includeSpec:   "src/lib",
			expected:      false,
		},
		{
			testName:      "case insensitive",
			candidatePath: "/home/user/project/SRC/Lib",
			includeSpec:   "src/lib",
			expected:      true,
		},
		{
			testName:      "backslash separators normalize",
			candidatePath: `C:\projects\demo\src\lib`,
			includeSpec:   "src/lib",
			expected:      true,
		},
		{
			testName:      "empty spec never matches",
			candidatePath: "/home/user/project",
			includeSpec:   "",
			expected:      false,
		},
		{
			testName:      "only the first anchor is tried",
			candidatePath: "/repo/src/tools/src/lib/extra",
			includeSpec:   "src/lib",
			expected:      false,
		},
	}
	for _, testCase := range testCases {
		testingInstance.Run(testCase.testName, func(subtest *testing.T) {
			actual := filter.MatchesIncludeSpec(testCase.candidatePath, testCase.includeSpec)
			if actual != testCase.expected {
				subtest.Errorf("MatchesIncludeSpec(%q, %q) = %v, expected %v",
					testCase.candidatePath, testCase.includeSpec, actual, testCase.expected)
			}
		})
	}
}
