package client

import (
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/legacy-keeper/internal/service"
)

type terminalNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
}

// NewTerminalNotifier prints notices as single lines: successes to out,
// errors to errOut.
func NewTerminalNotifier(out, errOut io.Writer) service.Notifier {
	return &terminalNotifier{out: out, errOut: errOut}
}

func (n *terminalNotifier) Success(title, message string) {
	n.print(n.out, "", title, message)
}

func (n *terminalNotifier) Error(title, message string) {
	n.print(n.errOut, "error: ", title, message)
}

func (n *terminalNotifier) print(w io.Writer, prefix, title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if message == "" {
		fmt.Fprintf(w, "%s%s\n", prefix, title)
		return
	}
	fmt.Fprintf(w, "%s%s: %s\n", prefix, title, message)
}
