package model

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"aidj/config"
)

// DispatchCmd runs cmd off the update loop. A panic inside the dispatch is
// reported as an error so the session never stays busy.
func DispatchCmd(d *Dispatcher, cmd Command, seq int) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				if config.DebugLog != nil {
					config.DebugLog.Printf("[Dispatch] Recovered panic in %s: %v", cmd.Kind, r)
				}
				msg = DispatchDoneMsg{
					Seq:    seq,
					Result: Result{Kind: cmd.Kind},
					Err:    fmt.Errorf("%v", r),
				}
			}
		}()

		res, err := d.Dispatch(context.Background(), cmd)
		return DispatchDoneMsg{Seq: seq, Result: res, Err: err}
	}
}
