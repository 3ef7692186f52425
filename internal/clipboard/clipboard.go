// Package clipboard copies secrets to the system clipboard with a timed
// auto-clear so passwords do not outlive their use.
package clipboard

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
)

// IsAvailable reports whether a system clipboard can be reached.
func IsAvailable() bool {
	_, err := clipboard.ReadAll()
	return err == nil
}

// Copy places text on the clipboard and schedules a clear after ttl. The
// clear only fires if the clipboard still holds the copied text, so a value
// the user replaced in the meantime is left alone.
func Copy(text string, ttl time.Duration) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	if ttl > 0 {
		go func() {
			time.Sleep(ttl)
			current, err := clipboard.ReadAll()
			if err == nil && current == text {
				clipboard.WriteAll("")
			}
		}()
	}

	return nil
}

// Clear empties the clipboard.
func Clear() error {
	return clipboard.WriteAll("")
}
