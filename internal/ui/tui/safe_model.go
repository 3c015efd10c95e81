package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicMessage = "Unexpected error (see logs)"

// safeModel keeps a panic in Update or View from tearing down the terminal.
// After a panic in Update the browser is reset to a usable state.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd { return s.m.Init() }

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("update", r)
			s.m = s.m.afterPanic()
			next, cmd = s, nil
		}
	}()

	inner, c := s.m.Update(msg)
	switch v := inner.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("view", r)
			out = panicMessage
		}
	}()
	return s.m.View()
}

func (s safeModel) logPanic(where string, r any) {
	s.log.Error("tui.panic",
		"where", where,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

// afterPanic drops in-flight state; loaded themes and the preview are kept.
func (m model) afterPanic() model {
	m.scr = screenBrowse
	m.busy = false
	m.toast = ""
	m.errMsg = panicMessage
	return m
}

var _ tea.Model = (*safeModel)(nil)
