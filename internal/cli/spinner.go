package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// showElapsedAfter is how long a layout must run before the spinner
// appends the elapsed time to its status line.
const showElapsedAfter = 2 * time.Second

// spinnerFrames is the animation cycle, one frame per tick.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// renderSpinner animates a status line on stderr while a Graphviz layout
// runs. Layouts of large workflows can take seconds, so once a run passes
// showElapsedAfter the line also shows how long it has been going. The
// spinner clears its line when stopped and stops on its own if the
// context is cancelled.
type renderSpinner struct {
	label   string
	start   time.Time
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	mu      sync.Mutex
	width   int // widest line written so far, for clearing
}

// newRenderSpinner creates a spinner labeled for the given preview format.
func newRenderSpinner(ctx context.Context, format string) *renderSpinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &renderSpinner{
		label:   fmt.Sprintf("Rendering %s preview", format),
		start:   time.Now(),
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start launches the animation goroutine.
func (s *renderSpinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				s.writeLine(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// writeLine redraws the status line with the given frame, appending the
// elapsed time once the run has passed showElapsedAfter.
func (s *renderSpinner) writeLine(frame string) {
	line := s.label
	if elapsed := time.Since(s.start); elapsed >= showElapsedAfter {
		line = fmt.Sprintf("%s (%s)", s.label, elapsed.Round(time.Second))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if w := len(line) + 2; w > s.width {
		s.width = w
	}
	fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(line))
}

// Stop halts the animation and clears the status line. Safe to call more
// than once.
func (s *renderSpinner) Stop() {
	s.cancel()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	<-s.stopped
	s.clearLine()
}

func (s *renderSpinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", s.width+2))
}

// Cancelled reports whether the spinner stopped because its context was
// cancelled rather than by an explicit Stop.
func (s *renderSpinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
