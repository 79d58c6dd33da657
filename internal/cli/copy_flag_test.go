package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// TestInterpretCopyFlagLiteral verifies the relaxed boolean literal set.
func TestInterpretCopyFlagLiteral(testingInstance *testing.T) {
	testCases := []struct {
		input              string
		expectedValue      bool
		expectedRecognized bool
	}{
		{input: "", expectedValue: true, expectedRecognized: true},
		{input: "true", expectedValue: true, expectedRecognized: true},
		{input: "YES", expectedValue: true, expectedRecognized: true},
		{input: " y ", expectedValue: true, expectedRecognized: true},
		{input: "1", expectedValue: true, expectedRecognized: true},
		{input: "false", expectedValue: false, expectedRecognized: true},
		{input: "No", expectedValue: false, expectedRecognized: true},
		{input: "0", expectedValue: false, expectedRecognized: true},
		{input: "./some/path", expectedRecognized: false},
		{input: "maybe", expectedRecognized: false},
	}
	for _, testCase := range testCases {
		actualValue, actualRecognized := interpretCopyFlagLiteral(testCase.input)
		if actualRecognized != testCase.expectedRecognized || (actualRecognized && actualValue != testCase.expectedValue) {
			testingInstance.Errorf("interpretCopyFlagLiteral(%q) = (%v, %v), expected (%v, %v)",
				testCase.input, actualValue, actualRecognized, testCase.expectedValue, testCase.expectedRecognized)
		}
	}
}

// TestNormalizeCopyFlagArguments verifies rewriting of space-separated copy
// flag values while keeping path arguments positional.
func TestNormalizeCopyFlagArguments(testingInstance *testing.T) {
	testCases := []struct {
		testName  string
		arguments []string
		expected  []string
	}{
		{
			testName:  "bare flag at the end",
			arguments: []string{".", "--copy"},
			expected:  []string{".", "--copy=true"},
		},
		{
			testName:  "boolean literal is consumed",
			arguments: []string{"--copy", "false", "."},
			expected:  []string{"--copy=false", "."},
		},
		{
			testName:  "path after the flag stays positional",
			arguments: []string{"--copy", "./project"},
			expected:  []string{"--copy=true", "./project"},
		},
		{
			testName:  "following flag is untouched",
			arguments: []string{"--copy", "--no-root", "."},
			expected:  []string{"--copy=true", "--no-root", "."},
		},
		{
			testName:  "arguments after the terminator pass through",
			arguments: []string{"--", "--copy", "true"},
			expected:  []string{"--", "--copy", "true"},
		},
	}
	for _, testCase := range testCases {
		testingInstance.Run(testCase.testName, func(subtest *testing.T) {
			actual := normalizeCopyFlagArguments(testCase.arguments)
			if strings.Join(actual, " ") != strings.Join(testCase.expected, " ") {
				subtest.Errorf("normalizeCopyFlagArguments(%v) = %v, expected %v", testCase.arguments, actual, testCase.expected)
			}
		})
	}
}

// TestRegisterCopyFlag verifies that the registered flag parses bare and
// valued forms.
func TestRegisterCopyFlag(testingInstance *testing.T) {
	var copyEnabled bool
	flagSet := pflag.NewFlagSet("render", pflag.ContinueOnError)
	registerCopyFlag(flagSet, &copyEnabled)

	if parseError := flagSet.Parse([]string{"--copy"}); parseError != nil {
		testingInstance.Fatalf("parsing bare flag failed: %v", parseError)
	}
	if !copyEnabled {
		testingInstance.Error("expected bare --copy to enable copying")
	}

	copyEnabled = false
	valuedFlagSet := pflag.NewFlagSet("render", pflag.ContinueOnError)
	registerCopyFlag(valuedFlagSet, &copyEnabled)
	if parseError := valuedFlagSet.Parse([]string{"--copy=yes", "."}); parseError != nil {
		testingInstance.Fatalf("parsing valued flag failed: %v", parseError)
	}
	if !copyEnabled {
		testingInstance.Error("expected --copy=yes to enable copying")
	}

	invalidFlagSet := pflag.NewFlagSet("render", pflag.ContinueOnError)
	registerCopyFlag(invalidFlagSet, &copyEnabled)
	if parseError := invalidFlagSet.Parse([]string{"--copy=maybe"}); parseError == nil {
		testingInstance.Error("expected an unrecognized literal to fail parsing")
	}
}
