// Package audio turns timer events into terminal bell cues.
package audio

import (
	"io"
	"log"
	"sync"

	"github.com/akyairhashvil/breathpace/internal/models"
)

const bell = "\a"

// Notifier rings the terminal bell on phase changes and, when enabled, on
// every countdown second. Output failures never reach the caller.
type Notifier struct {
	mu      sync.Mutex
	w       io.Writer
	muted   bool
	tickCue bool
	failed  bool
}

func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

func (n *Notifier) SetMuted(muted bool) {
	n.mu.Lock()
	n.muted = muted
	n.mu.Unlock()
}

func (n *Notifier) SetTickCue(on bool) {
	n.mu.Lock()
	n.tickCue = on
	n.mu.Unlock()
}

// PhaseChange plays the cue for entering phase. Every phase shares the same
// cue on a terminal.
func (n *Notifier) PhaseChange(models.Phase) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.muted {
		return
	}
	n.ring()
}

// Tick plays the countdown cue.
func (n *Notifier) Tick() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.muted || !n.tickCue {
		return
	}
	n.ring()
}

// ring logs the first write failure only.
func (n *Notifier) ring() {
	if n.w == nil {
		return
	}
	if _, err := io.WriteString(n.w, bell); err != nil && !n.failed {
		n.failed = true
		log.Printf("audio cue unavailable: %v", err)
	}
}
