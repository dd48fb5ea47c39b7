package answer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"  42 ", "42"},
		{"X = 2", "2"},
		{"x=5", "5"},
		{"(2)", "2"},
		{"(x + 2)(x + 3)", "+2x+3"},
		{"3/5 or 0.6", "3/5or0.6"},
		{"", ""},
		{"   ", ""},
		{"XX", "x"}, // only one leading x is stripped
	}

	for _, tc := range tests {
		got := Normalize(tc.input)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		user    string
		correct string
		want    bool
	}{
		{"  42 ", "42", true},
		{"X=2", "2", true},
		{"(2)", "2", true},
		{"x = 3 or x = 1", "x = 3 or x = 1", true},
		{"8x", "8x", true},
		{"43", "42", false},
		{"", "42", false},
		{"", "", true}, // blank-matches-blank: catalog loading guards against this
	}

	for _, tc := range tests {
		got := Matches(tc.user, tc.correct)
		if got != tc.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tc.user, tc.correct, got, tc.want)
		}
	}
}

// The matcher is syntactic, not semantic. Equivalent values in different
// notations are judged unequal. This is a known, accepted limitation.
func TestMatches_NoSemanticEquivalence(t *testing.T) {
	if Matches("1/2", "0.5") {
		t.Error(`Matches("1/2", "0.5") = true, want false (no expression evaluation)`)
	}
	if Matches("2+2", "4") {
		t.Error(`Matches("2+2", "4") = true, want false (no expression evaluation)`)
	}
}
