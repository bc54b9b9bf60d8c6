// Package common provides tests for safe integer conversions
package common

import (
	"testing"
)

func TestSafeIntToUint16(t *testing.T) {
	testCases := []struct {
		name     string
		value    int
		expected uint16
		hasError bool
	}{
		{"zero", 0, 0, false},
		{"normal value", 1024, 1024, false},
		{"max value", 65535, 65535, false},
		{"negative", -1, 0, true},
		{"too large", 65536, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := SafeIntToUint16(tc.value)

			if tc.hasError {
				if err == nil {
					t.Errorf("SafeIntToUint16(%d) should fail", tc.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("SafeIntToUint16(%d) failed: %v", tc.value, err)
			}
			if result != tc.expected {
				t.Errorf("SafeIntToUint16(%d) = %d, want %d", tc.value, result, tc.expected)
			}
		})
	}
}
