package harness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/lazyq/internal/seq"
	"github.com/roach88/lazyq/internal/value"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Output   string // Canonical JSON of the sample output, if any
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	if e.Output != "" {
		fmt.Fprintf(&buf, "\nOutput:\n  %s\n", e.Output)
	}

	return buf.String()
}

// IsAssertionError reports whether err is an *AssertionError.
func IsAssertionError(err error) bool {
	var ae *AssertionError
	return errors.As(err, &ae)
}

// canonical renders v for failure messages.
func canonical(v value.Value) string {
	b, err := value.MarshalCanonical(v)
	if err != nil {
		return fmt.Sprintf("<unrenderable: %v>", err)
	}
	return string(b)
}

func assertEquals(out value.Value, assertion Assertion) error {
	expected, err := assertion.Expected()
	if err != nil {
		return err
	}
	eq, err := value.Equal(out, expected)
	if err != nil {
		return err
	}
	if !eq {
		return &AssertionError{
			Type:     AssertEquals,
			Expected: canonical(expected),
			Actual:   canonical(out),
		}
	}
	return nil
}

// asArray returns out as an array, or an assertion failure naming kind.
func asArray(out value.Value, kind string) (value.Array, error) {
	arr, ok := out.(value.Array)
	if !ok {
		return nil, &AssertionError{
			Type:     kind,
			Expected: "an array",
			Actual:   fmt.Sprintf("%T", out),
			Output:   canonical(out),
		}
	}
	return arr, nil
}

func assertContains(out value.Value, assertion Assertion) error {
	arr, err := asArray(out, AssertContains)
	if err != nil {
		return err
	}
	expected, err := assertion.Expected()
	if err != nil {
		return err
	}
	for _, elem := range arr {
		eq, err := value.Equal(elem, expected)
		if err != nil {
			return err
		}
		if eq {
			return nil
		}
	}
	return &AssertionError{
		Type:     AssertContains,
		Expected: fmt.Sprintf("an element equal to %s", canonical(expected)),
		Actual:   "not found in output",
		Output:   canonical(out),
	}
}

func assertCount(out value.Value, assertion Assertion) error {
	arr, err := asArray(out, AssertCount)
	if err != nil {
		return err
	}
	if len(arr) != *assertion.Count {
		return &AssertionError{
			Type:     AssertCount,
			Expected: fmt.Sprintf("%d elements", *assertion.Count),
			Actual:   fmt.Sprintf("%d elements", len(arr)),
			Output:   canonical(out),
		}
	}
	return nil
}

func assertFirst(out value.Value, assertion Assertion) error {
	arr, err := asArray(out, AssertFirst)
	if err != nil {
		return err
	}
	expected, err := assertion.Expected()
	if err != nil {
		return err
	}
	if len(arr) == 0 {
		return &AssertionError{
			Type:     AssertFirst,
			Expected: canonical(expected),
			Actual:   "empty output",
		}
	}
	eq, err := value.Equal(arr[0], expected)
	if err != nil {
		return err
	}
	if !eq {
		return &AssertionError{
			Type:     AssertFirst,
			Expected: canonical(expected),
			Actual:   canonical(arr[0]),
		}
	}
	return nil
}

// assertError checks the failure of a sample against an error assertion.
// runErr is nil when the sample succeeded.
func assertError(out value.Value, runErr error, assertion Assertion) error {
	if runErr == nil {
		return &AssertionError{
			Type:     AssertError,
			Expected: fmt.Sprintf("error %s", assertion.Code),
			Actual:   "sample succeeded",
			Output:   canonical(out),
		}
	}
	code := seq.CodeOf(runErr)
	if string(code) != assertion.Code {
		actual := string(code)
		if actual == "" {
			actual = runErr.Error()
		}
		return &AssertionError{
			Type:     AssertError,
			Expected: fmt.Sprintf("error %s", assertion.Code),
			Actual:   fmt.Sprintf("error %s", actual),
		}
	}
	return nil
}

// EvaluateAssertions checks assertions against the outcome of one sample
// run and returns a message per failed assertion.
func EvaluateAssertions(out value.Value, runErr error, assertions []Assertion) []string {
	var failures []string

	for i, assertion := range assertions {
		var err error

		if assertion.Type == AssertError {
			err = assertError(out, runErr, assertion)
		} else if runErr != nil {
			err = &AssertionError{
				Type:     assertion.Type,
				Expected: "sample to succeed",
				Actual:   fmt.Sprintf("sample failed: %v", runErr),
			}
		} else {
			switch assertion.Type {
			case AssertEquals:
				err = assertEquals(out, assertion)
			case AssertContains:
				err = assertContains(out, assertion)
			case AssertCount:
				err = assertCount(out, assertion)
			case AssertFirst:
				err = assertFirst(out, assertion)
			default:
				err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
			}
		}

		if err != nil {
			failures = append(failures, err.Error())
		}
	}

	return failures
}
