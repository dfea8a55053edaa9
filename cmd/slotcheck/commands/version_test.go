package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thoreinstein/slotcheck/cmd"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	versionCmd.Run(versionCmd, nil)

	out := buf.String()
	for _, want := range []string{"slotcheck version " + cmd.Version, "commit: " + cmd.Commit, "built:  " + cmd.Date} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
