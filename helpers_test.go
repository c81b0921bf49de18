//
// Mdtree Markdown Processor
// Originally based on http://github.com/russross/blackfriday
// by Russ Ross <russ@russross.com>
//

//
// Helper functions for unit testing
//

package mdtree

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// diff returns a unified diff of expected and actual, split at newlines.
func diff(expected, actual string) string {
	d, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return d
}

// doTestsWithRunner runs input/expected pairs through runner. Every
// substring of every input is converted too, to stress test bounds
// checking; those may fail but must not panic.
func doTestsWithRunner(t *testing.T, tests []string, runner func(string) (string, error)) {
	t.Helper()
	// catch and report panics
	var candidate string
	defer func() {
		if err := recover(); err != nil {
			t.Errorf("\npanic while processing [%#v]: %s\n", candidate, err)
		}
	}()

	for i := 0; i+1 < len(tests); i += 2 {
		input := tests[i]
		candidate = input
		expected := tests[i+1]
		actual, err := runner(candidate)
		if err != nil {
			t.Errorf("\nInput   [%#v]\nError   %v", candidate, err)
			continue
		}
		if actual != expected {
			t.Errorf("\nInput   [%#v]\nExpected[%#v]\nActual  [%#v]\n%s",
				candidate, expected, actual, diff(expected, actual))
		}

		// now test every substring to stress test bounds checking
		if !testing.Short() {
			for start := 0; start < len(input); start++ {
				for end := start + 1; end <= len(input); end++ {
					candidate = input[start:end]
					_, _ = runner(candidate)
				}
			}
		}
	}
}

func runMarkdownBlock(input string) (string, error) {
	n, err := BlockToNode(input)
	if err != nil {
		return "", err
	}
	return n.Render()
}

func doTestsBlock(t *testing.T, tests []string) {
	t.Helper()
	doTestsWithRunner(t, tests, runMarkdownBlock)
}

func doTestsMarkdown(t *testing.T, tests []string, opts Options) {
	t.Helper()
	doTestsWithRunner(t, tests, func(input string) (string, error) {
		return MarkdownOptions(input, opts)
	})
}
