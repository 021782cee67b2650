package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func stubClipboard(t *testing.T, ok bool, sysErr error) *[]string {
	t.Helper()
	var copied []string
	prevWrite, prevOK, prevOSC := systemWrite, systemOK, osc52Write
	t.Cleanup(func() { systemWrite, systemOK, osc52Write = prevWrite, prevOK, prevOSC })
	systemOK = func() bool { return ok }
	systemWrite = func(s string) error {
		if sysErr != nil {
			return sysErr
		}
		copied = append(copied, "system:"+s)
		return nil
	}
	osc52Write = func(s string) error {
		copied = append(copied, "osc52:"+s)
		return nil
	}
	return &copied
}

func TestCopyPrefersSystemClipboard(t *testing.T) {
	copied := stubClipboard(t, true, nil)
	method, err := Copy("hello")
	if err != nil || method != MethodSystem {
		t.Fatalf("method=%s err=%v", method, err)
	}
	if len(*copied) != 1 || (*copied)[0] != "system:hello" {
		t.Fatalf("copied %v", *copied)
	}
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	copied := stubClipboard(t, true, errors.New("no xclip"))
	method, err := Copy("hello")
	if err != nil || method != MethodOSC52 {
		t.Fatalf("method=%s err=%v", method, err)
	}
	if len(*copied) != 1 || (*copied)[0] != "osc52:hello" {
		t.Fatalf("copied %v", *copied)
	}

	copied = stubClipboard(t, false, nil)
	if method, _ := Copy("x"); method != MethodOSC52 {
		t.Fatalf("unsupported system clipboard should use osc52, got %s", method)
	}
	if len(*copied) != 1 {
		t.Fatalf("copied %v", *copied)
	}
}

func TestWriteOSC52Sequence(t *testing.T) {
	t.Setenv("TMUX", "")
	var buf bytes.Buffer
	if err := writeOSC52(&buf, "trip", "xterm-256color"); err != nil {
		t.Fatal(err)
	}
	encoded := base64.StdEncoding.EncodeToString([]byte("trip"))
	if !strings.HasPrefix(buf.String(), "\x1b]52;c;") || !strings.Contains(buf.String(), encoded) {
		t.Fatalf("unexpected sequence %q", buf.String())
	}
}
