package watcher

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ChangedMsg is delivered to the Bubble Tea program when the watched file
// changes on disk.
type ChangedMsg struct {
	Path string
}

// ListenCmd creates a Bubble Tea command that waits for the next change
// signal on ch. Returns nil if the context is cancelled or the channel is
// closed. Call it again after handling ChangedMsg to keep listening.
func ListenCmd(ctx context.Context, path string, ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			return ChangedMsg{Path: path}
		}
	}
}
