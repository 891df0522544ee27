package ui

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"aidj/ascii"
	"aidj/config"
	"aidj/model"
)

const flashDuration = 2 * time.Second

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		firstLayout := !a.ready
		a.width = msg.Width
		a.height = msg.Height
		a.resize()

		if a.viewport.Width != a.renderWidth {
			a.renderWidth = a.viewport.Width
			a.rendered = make(map[int]string)
			a.rendering = make(map[int]bool)
		}
		a.updateViewportContent(firstLayout || a.viewport.AtBottom())
		return a, a.renderPending()

	case ascii.FramesLoadedMsg:
		a.framesLoaded = true
		a.framesErr = msg.Source.Err

		fps := msg.Source.FPS()
		if a.dataModel.Config.FPS > 0 {
			fps = a.dataModel.Config.FPS
		}
		cmd := a.header.Configure(msg.Source.Frames, fps)
		a.resize()
		return a, cmd

	case ascii.TickMsg:
		var cmd tea.Cmd
		a.header, cmd = a.header.Update(msg)
		return a, cmd

	case spinner.TickMsg:
		// The spinner only runs while a dispatch is in flight
		if !a.dataModel.Session.Busy() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		a.updateViewportContent(a.viewport.AtBottom())
		return a, cmd

	case model.DispatchDoneMsg:
		return a.handleDispatchDone(msg)

	case model.MarkdownRenderedMsg:
		delete(a.rendering, msg.MessageID)
		if msg.Width != a.renderWidth || !a.markdownIDs[msg.MessageID] {
			if config.DebugLog != nil {
				config.DebugLog.Printf("[UI] Dropping render of message %d at width %d", msg.MessageID, msg.Width)
			}
			return a, nil
		}
		a.rendered[msg.MessageID] = msg.Rendered
		a.updateViewportContent(true)
		return a, nil

	case model.ClipboardCopiedMsg:
		if msg.Err != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("[UI] Clipboard copy of %s failed: %v", msg.What, msg.Err)
			}
			return a, a.setFlash("Clipboard unavailable")
		}
		return a, a.setFlash("Copied " + msg.What)

	case model.FlashTickMsg:
		if msg.Seq == a.flashSeq {
			a.flash = ""
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a AppView) handleDispatchDone(msg model.DispatchDoneMsg) (tea.Model, tea.Cmd) {
	current := msg.Seq == a.dataModel.DispatchSeq

	if a.dataModel.Complete(msg) {
		a.header.Stop()
		return a, tea.Quit
	}
	if !current {
		return a, nil
	}

	if msg.Result.Effect == model.EffectClear {
		a.markdownIDs = make(map[int]bool)
		a.rendered = make(map[int]string)
		a.rendering = make(map[int]bool)
	}

	if msg.Err == nil && msg.Result.Markdown {
		if reply, ok := a.dataModel.Session.Timeline().LastOfKind(model.KindResponse); ok {
			a.markdownIDs[reply.ID] = true
		}
	}

	a.updateViewportContent(true)
	return a, a.renderPending()
}

func (a AppView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := a.dataModel.Config.Keybindings
	key := msg.String()

	if key == "ctrl+c" || key == kb.GetActionKey("quit") {
		a.header.Stop()
		a.dataModel.Quitting = true
		return a, tea.Quit
	}

	if a.showHelp {
		if key == "esc" || key == kb.GetActionKey("help") {
			a.showHelp = false
		}
		return a, nil
	}

	if key != kb.GetActionKey("complete") {
		a.completion.Reset()
	}

	switch key {
	case kb.GetActionKey("submit"):
		return a.submit()

	case kb.GetActionKey("history_older"):
		if a.dataModel.Session.Older() {
			a.syncInputFromSession()
		}
		return a, nil

	case kb.GetActionKey("history_newer"):
		if a.dataModel.Session.Newer() {
			a.syncInputFromSession()
		}
		return a, nil

	case kb.GetActionKey("complete"):
		if word, ok := a.completion.Next(a.input.Value()); ok {
			a.input.SetValue(word)
			a.input.CursorEnd()
			a.dataModel.Session.SetInput(word)
		}
		return a, nil

	case kb.GetActionKey("scroll_up"):
		a.viewport.PageUp()
		return a, nil

	case kb.GetActionKey("scroll_down"):
		a.viewport.PageDown()
		return a, nil

	case kb.GetActionKey("scroll_to_top"):
		a.viewport.GotoTop()
		return a, nil

	case kb.GetActionKey("scroll_to_end"):
		a.viewport.GotoBottom()
		return a, nil

	case kb.GetActionKey("help"):
		a.showHelp = true
		return a, nil

	case kb.GetActionKey("clear_input"):
		a.input.SetValue("")
		a.dataModel.Session.SetInput("")
		return a, nil

	case kb.GetActionKey("copy_last_reply"):
		reply, ok := a.dataModel.Session.Timeline().LastOfKind(model.KindResponse)
		if !ok {
			return a, a.setFlash("Nothing to copy")
		}
		return a, copyCmd("last reply", reply.Content)

	case kb.GetActionKey("copy_timeline"):
		return a, copyCmd("timeline", timelineText(a.dataModel.Session.Messages()))
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.dataModel.Session.SetInput(a.input.Value())
	return a, cmd
}

func (a AppView) submit() (tea.Model, tea.Cmd) {
	cmd, err := a.dataModel.Submit(a.input.Value())
	switch {
	case errors.Is(err, model.ErrEmptyInput):
		return a, nil
	case errors.Is(err, model.ErrBusy):
		return a, a.setFlash("Still processing the last command")
	case err != nil:
		return a, a.setFlash(err.Error())
	}

	a.input.SetValue("")
	a.updateViewportContent(true)
	return a, tea.Batch(cmd, a.spinner.Tick)
}

func (a *AppView) syncInputFromSession() {
	a.input.SetValue(a.dataModel.Session.Input())
	a.input.CursorEnd()
}

// setFlash shows text in the status bar until the next flash or timeout.
func (a *AppView) setFlash(text string) tea.Cmd {
	a.flashSeq++
	a.flash = text
	seq := a.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return model.FlashTickMsg{Seq: seq}
	})
}

func copyCmd(what, text string) tea.Cmd {
	return func() tea.Msg {
		return model.ClipboardCopiedMsg{What: what, Err: clipboard.WriteAll(text)}
	}
}
