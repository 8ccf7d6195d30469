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

import "testing"

// DemandEquality is used to test equality between one value and another. If
// the test fails it is a testing fatality.
//
// This is particularly useful if the values being tested are used in further
// tests and so must be correct.
func DemandEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Fatalf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
	}
}

// DemandSuccess is used to test for a value which indicates a 'successful'
// value for the type. See expect() commentary for supported types.
func DemandSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if !expect(t, v) {
		t.Fatalf("a success value is demanded for type %T", v)
	}
}

// DemandFailure is used to test for a value which indicates an 'unsuccessful'
// value for the type. See expect() commentary for supported types.
func DemandFailure(t *testing.T, v interface{}) {
	t.Helper()
	if expect(t, v) {
		t.Fatalf("a failure value is demanded for type %T", v)
	}
}
