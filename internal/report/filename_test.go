package report

import "testing"

func TestValidFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "nic.html", true},
		{"exactly six characters", "a.html", true},
		{"relative path", "out/report.html", true},
		{"backslash path", "out\\report.html", true},
		{"absolute path", "/tmp/easter2020.html", true},
		{"wrong extension", "nic.htm", false},
		{"too short", ".html", false},
		{"empty", "", false},
		{"hash", "nic#.html", false},
		{"space", "my report.html", false},
		{"dash", "my-report.html", false},
		{"underscore", "my_report.html", false},
		{"suffix not at end", "nic.html.txt", false},
		{"uppercase suffix", "NIC.HTML", false},
		{"non-ascii letter", "velikonoceč.html", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidFilename(tt.input)

			if result != tt.want {
				t.Errorf("ValidFilename(%q) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}
