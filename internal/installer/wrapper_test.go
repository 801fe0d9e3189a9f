// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"strings"
	"testing"
)

func TestWrapperContent(t *testing.T) {
	cfg, r, _ := testSetup(t, "")
	inst := newTestInstaller(cfg, r, Options{})

	content := inst.WrapperContent()
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("wrapper has %d lines, want 2:\n%s", len(lines), content)
	}
	if lines[0] != "#!/bin/sh" {
		t.Errorf("wrapper line 1 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "exec python3 ") || !strings.HasSuffix(lines[1], ` "$@"`) {
		t.Errorf("wrapper line 2 = %q", lines[1])
	}
	if !strings.Contains(lines[1], cfg.ScriptPath()) {
		t.Errorf("wrapper does not reference the installed script: %q", lines[1])
	}
}

func TestValidateShellScript(t *testing.T) {
	if err := validateShellScript("#!/bin/sh\nexec python3 /opt/gitAuto/gitauto.py \"$@\"\n", "gitauto"); err != nil {
		t.Errorf("valid wrapper rejected: %v", err)
	}

	if err := validateShellScript("exec python3 ${unclosed\n", "gitauto"); err == nil {
		t.Error("malformed shell accepted")
	}
}

func TestHasShebang(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{"exact with newline", Shebang + "\ncode\n", true},
		{"directive only", Shebang, true},
		{"crlf line ending", Shebang + "\r\ncode\n", true},
		{"different shebang", "#!/usr/bin/python\ncode\n", false},
		{"directive as prefix of longer line", Shebang + ".11\ncode\n", false},
		{"empty file", "", false},
		{"plain code", "import os\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasShebang([]byte(tt.data)); got != tt.want {
				t.Errorf("hasShebang(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}
