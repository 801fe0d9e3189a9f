// SPDX-License-Identifier: MPL-2.0

package sysdeps

import (
	"context"
	"testing"
)

func TestRuntimeVersion(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"python3 --version": "Python 3.11.4",
	}}
	c := NewChecker(r, testLogger(), "")

	got, err := c.RuntimeVersion(context.Background(), "python3")
	if err != nil {
		t.Fatalf("RuntimeVersion() error: %v", err)
	}
	if got != "3.11.4" {
		t.Errorf("RuntimeVersion() = %q, want 3.11.4", got)
	}
}

func TestRuntimeVersion_NoNumber(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"python3 --version": "no digits here",
	}}
	c := NewChecker(r, testLogger(), "")

	if _, err := c.RuntimeVersion(context.Background(), "python3"); err == nil {
		t.Fatal("RuntimeVersion() should fail when no version number is printed")
	}
}

func TestRuntimeVersion_ProbeFails(t *testing.T) {
	c := NewChecker(&fakeRunner{}, testLogger(), "")
	if _, err := c.RuntimeVersion(context.Background(), "python3"); err == nil {
		t.Fatal("RuntimeVersion() should propagate probe failures")
	}
}

func TestMeetsMinimum(t *testing.T) {
	tests := []struct {
		got, min string
		want     bool
	}{
		{"3.11.4", "", true},
		{"3.11.4", "3.8", true},
		{"3.8", "3.8", true},
		{"3.6.9", "3.8", false},
		{"3.11", "3.11.0", true},
		{"2.7.18", "3.0", false},
	}

	for _, tt := range tests {
		if got := MeetsMinimum(tt.got, tt.min); got != tt.want {
			t.Errorf("MeetsMinimum(%q, %q) = %v, want %v", tt.got, tt.min, got, tt.want)
		}
	}
}
