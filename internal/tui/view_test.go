package tui

import "testing"

func TestCenteredPadsToDisplayWidth(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"Mar 22", 6, "Mar 22"},
		{"ab", 6, "  ab  "},
		{"abc", 6, " abc  "},
		{"héllo", 7, " héllo "}, // 5 display cells, 6 bytes
		{"too wide", 4, "too wide"},
	}
	for _, tc := range cases {
		if got := centered(tc.in, tc.width); got != tc.want {
			t.Fatalf("centered(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
