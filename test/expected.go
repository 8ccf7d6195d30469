// This file is part of Periphsim.
//
// Periphsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Periphsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Periphsim.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"testing"
)

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another.
// In other words, the test does not want to succeed if the values are equal.
func ExpectInequality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value == expectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// expect tests argument v for a success condition suitable for its type.
// Currently supported types:
//
//	bool -> bool == true
//	error -> error == nil
//
// If type is nil then the test succeeds.
func expect(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			return false
		}

	case error:
		if v != nil {
			return false
		}

	case nil:
		return true

	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}

	return true
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. See expect() commentary for supported types.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()
	if !expect(t, v) {
		t.Errorf("a success value is expected for type %T", v)
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. See expect() commentary for supported types.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()
	if expect(t, v) {
		t.Errorf("a failure value is expected for type %T", v)
		return false
	}
	return true
}
