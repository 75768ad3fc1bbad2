package input

import (
	"bufio"
	"context"
	"io"
	"time"
)

// ReadLines scans r line by line on its own goroutine and delivers each line
// as a RawInput. The channel closes at EOF, on a read error, or when ctx is done.
func ReadLines(ctx context.Context, r io.Reader, dev Device) <-chan RawInput {
	out := make(chan RawInput)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case out <- RawInput{Device: dev, Code: scanner.Text(), Timestamp: time.Now()}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
