package spinner

import (
	"fmt"
	"io"
	"time"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/styles"
)

const tick = 100 * time.Millisecond

var stages = []string{" ", ".", "o", "O", "@", "*"}

// CircleWaitWithTimer draws a pulsing marker and the elapsed time on w until
// done is closed, then clears the line.
func CircleWaitWithTimer(w io.Writer, done <-chan struct{}) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	start := time.Now()
	for i := 0; ; i++ {
		fmt.Fprintf(w, "\r%s %.2fs", styles.Success.Render(stages[i%len(stages)]), time.Since(start).Seconds())
		select {
		case <-done:
			fmt.Fprint(w, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}

// Start runs the spinner in the background. The returned stop function
// blocks until the line has been cleared.
func Start(w io.Writer) (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		CircleWaitWithTimer(w, done)
	}()
	return func() {
		close(done)
		<-finished
	}
}
