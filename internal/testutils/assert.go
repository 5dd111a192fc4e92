// Package testutils holds small testing.T assertion helpers shared across
// the toolkit's packages, in place of a third-party assertion library.
package testutils

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"testing"

	"golang.org/x/exp/slices"
)

// AssertBigIntNonZero checks if the provided not-nil big integer is non-zero.
// If the provided big integer is zero, it reports a test failure.
func AssertBigIntNonZero(t *testing.T, description string, actual *big.Int) {
	if actual.Sign() == 0 {
		t.Errorf("expected %s to be non-zero", description)
	}
}

// AssertBigIntsEqual checks if two not-nil big integers are equal. If not, it
// reports a test failure.
func AssertBigIntsEqual(t *testing.T, description string, expected *big.Int, actual *big.Int) {
	if expected.Cmp(actual) != 0 {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertBigIntSliceEqual checks if two slices of big integers hold equal
// values pairwise, using golang.org/x/exp/slices.EqualFunc since *big.Int is
// not comparable by identity.
func AssertBigIntSliceEqual(t *testing.T, description string, expected, actual []*big.Int) {
	eq := slices.EqualFunc(expected, actual, func(a, b *big.Int) bool {
		return a.Cmp(b) == 0
	})
	if !eq {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertIntsEqual checks if two integers are equal. If not, it reports a test
// failure.
func AssertIntsEqual(t *testing.T, description string, expected int, actual int) {
	if expected != actual {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertBytesEqual checks if the two byte slices are equal. If not, it
// reports a test failure.
func AssertBytesEqual(t *testing.T, expectedBytes []byte, actualBytes []byte) {
	if err := testBytesEqual(expectedBytes, actualBytes); err != nil {
		t.Error(err)
	}
}

// AssertStringsEqual checks if two strings are equal. If not, it reports a test
// failure.
func AssertStringsEqual(t *testing.T, description string, expected string, actual string) {
	if expected != actual {
		t.Errorf(
			"unexpected %s\nexpected: %s\nactual:   %s\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertBoolsEqual checks if two booleans are equal. If not, it reports a test
// failure.
func AssertBoolsEqual(t *testing.T, description string, expected bool, actual bool) {
	if expected != actual {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertNoError fails the test if err is non-nil.
func AssertNoError(t *testing.T, description string, err error) {
	if err != nil {
		t.Errorf("unexpected error for %s: %v", description, err)
	}
}

// AssertErrorIs fails the test unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, description string, err error, target error) {
	if !errors.Is(err, target) {
		t.Errorf("expected %s to fail with %v, got %v", description, target, err)
	}
}

func testBytesEqual(expectedBytes []byte, actualBytes []byte) error {
	minLen := len(expectedBytes)
	diffCount := 0
	if actualLen := len(actualBytes); actualLen < minLen {
		diffCount = minLen - actualLen
		minLen = actualLen
	} else {
		diffCount = actualLen - minLen
	}

	for i := 0; i < minLen; i++ {
		if expectedBytes[i] != actualBytes[i] {
			diffCount++
		}
	}

	if diffCount != 0 {
		return fmt.Errorf(
			"byte slices differ in %v places\nexpected: [%v]\nactual:   [%v]",
			diffCount,
			expectedBytes,
			actualBytes,
		)
	}

	return nil
}

// AssertDeepEqual checks structural equality via reflect.DeepEqual, for
// values without a more specific comparator above.
func AssertDeepEqual(
	t *testing.T,
	description string,
	expected any,
	actual any,
) {
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}
