package testbed

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/testbed2d/render"
	"github.com/lixenwraith/testbed2d/status"
)

const statusHelp = "t pause  s step  q quit"

// statusLine formats the mode and counters shown on the top row
func (t *Testbed) statusLine() string {
	snap := t.reg.Snapshot()
	var b strings.Builder
	b.WriteString(strings.ToUpper(snap[status.KeyRunMode]))
	fmt.Fprintf(&b, " | steps %s | bodies %s | nodes %s | %s",
		snap[status.KeySimSteps],
		snap[status.KeySceneBodies],
		snap[status.KeySceneNodes],
		statusHelp)
	return b.String()
}

func (t *Testbed) drawStatusBar() {
	t.display.DrawText(0, 0, t.statusLine(), render.RGBWhite, render.RGBBlack)
}
