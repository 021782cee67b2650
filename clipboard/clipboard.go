package clipboard

import (
	"fmt"

	sysclip "github.com/atotto/clipboard"

	"github.com/andareed/siftly-bikeshare/logging"
)

// Method reports how text reached the clipboard.
type Method string

const (
	MethodSystem Method = "system"
	MethodOSC52  Method = "osc52"
)

// seams for tests
var (
	systemWrite = sysclip.WriteAll
	systemOK    = func() bool { return !sysclip.Unsupported }
	osc52Write  = copyOSC52
)

// Copy puts text on the system clipboard, falling back to an OSC52 escape
// sequence when no clipboard utility is available (ssh sessions, bare ttys).
func Copy(text string) (Method, error) {
	if systemOK() {
		err := systemWrite(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes via system clipboard", len(text))
			return MethodSystem, nil
		}
		logging.Warnf("Clipboard: system clipboard failed: %v", err)
	}
	if err := osc52Write(text); err != nil {
		return "", fmt.Errorf("clipboard: %w", err)
	}
	return MethodOSC52, nil
}
