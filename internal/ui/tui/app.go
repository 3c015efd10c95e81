package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkazemie/github-profile-generator/internal/domain"
)

type screen int

const (
	screenBrowse screen = iota
	screenInitConfirm
)

type themeItem struct {
	ref domain.ThemeRef
}

func (t themeItem) Title() string { return t.ref.Name }
func (t themeItem) Description() string {
	if t.ref.Description != "" {
		return t.ref.Description
	}
	if t.ref.Builtin {
		return "built-in theme"
	}
	return t.ref.Path
}
func (t themeItem) FilterValue() string { return t.ref.Name + " " + t.ref.Title }

type model struct {
	st    styles
	deps  Deps

	scr     screen
	themes  list.Model
	preview viewport.Model

	width  int
	height int

	profile      domain.Profile
	profileReady bool
	themesReady  bool

	current      domain.Document
	previewTheme string
	raw          bool
	focusPreview bool
	busy         bool

	toast  string
	errMsg string

	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Themes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	root := deps.WorkspaceRoot
	if root == "" {
		if wd, err := os.Getwd(); err == nil {
			root = wd
		}
	}

	return model{
		st:             defaultStyles(),
		deps:           deps,
		scr:            screenBrowse,
		themes:         l,
		preview:        viewport.New(0, 0),
		workspaceFound: deps.WorkspaceFound,
		workspaceRoot:  root,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(cmdLoadThemes(m.deps), cmdLoadProfile(m.deps))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		var cmd tea.Cmd
		if m.current.Content != "" {
			cmd = m.requestPreview(m.previewTheme)
		}
		return m, cmd

	case themesLoadedMsg:
		m.themesReady = true
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, themeItem{ref: r})
		}
		setCmd := m.themes.SetItems(items)
		m.selectTheme(m.deps.Config.Defaults.Theme)
		previewCmd := m.maybeFirstPreview()
		return m, tea.Batch(setCmd, previewCmd)

	case profileLoadedMsg:
		m.profileReady = true
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			m.profile = domain.NewProfile()
		} else {
			m.profile = msg.profile
		}
		cmd := m.maybeFirstPreview()
		return m, cmd

	case previewMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.current = msg.doc
		m.previewTheme = msg.theme
		m.preview.SetContent(msg.rendered)
		return m, nil

	case writeDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.toast = "Wrote " + msg.location
		m.logInfo("tui.readme.written", "path", msg.location, "theme", m.current.Theme)
		return m, nil

	case initWorkspaceDoneMsg:
		m.busy = false
		m.scr = screenBrowse
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace created at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case workspaceRefreshedMsg:
		if msg.found {
			m.workspaceFound = true
			m.workspaceRoot = msg.root
		}
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenInitConfirm {
			return m.updateInitConfirm(msg)
		}
		if m.themes.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "enter":
			var cmd tea.Cmd
			if it, ok := m.themes.SelectedItem().(themeItem); ok {
				cmd = m.requestPreview(it.ref.Name)
			}
			return m, cmd

		case "tab":
			m.focusPreview = !m.focusPreview
			return m, nil

		case "m":
			m.raw = !m.raw
			cmd := m.requestPreview(m.previewTheme)
			return m, cmd

		case "w":
			if m.current.Content == "" || m.busy {
				return m, nil
			}
			m.busy = true
			m.toast = ""
			return m, cmdWrite(m.deps, m.current)

		case "r":
			m.toast = "Reloaded"
			m.current = domain.Document{}
			m.profileReady, m.themesReady = false, false
			return m, tea.Batch(cmdReloadThemes(m.deps), cmdLoadProfile(m.deps))

		case "i":
			if !m.workspaceFound {
				m.scr = screenInitConfirm
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focusPreview {
		m.preview, cmd = m.preview.Update(msg)
	} else {
		m.themes, cmd = m.themes.Update(msg)
	}
	return m, cmd
}

func (m model) updateInitConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.busy = true
		return m, cmdInitWorkspaceHere(m.deps, m.workspaceRoot)
	case "ctrl+c":
		return m, tea.Quit
	default:
		m.scr = screenBrowse
		return m, nil
	}
}

func (m *model) layout() {
	listW, previewW, bodyH := paneSizes(m.width, m.height)
	m.themes.SetSize(listW, bodyH)
	m.preview.Width = previewW
	m.preview.Height = bodyH
}

// selectTheme moves the cursor to name when present.
func (m *model) selectTheme(name string) {
	for i, it := range m.themes.Items() {
		if ti, ok := it.(themeItem); ok && ti.ref.Name == name {
			m.themes.Select(i)
			return
		}
	}
}

func (m *model) maybeFirstPreview() tea.Cmd {
	if !m.themesReady || !m.profileReady || m.current.Content != "" {
		return nil
	}
	it, ok := m.themes.SelectedItem().(themeItem)
	if !ok {
		return nil
	}
	return m.requestPreview(it.ref.Name)
}

func (m *model) requestPreview(name string) tea.Cmd {
	if name == "" {
		return nil
	}
	m.busy = true
	width := m.preview.Width
	if width <= 0 {
		width = 80
	}
	return cmdPreview(m.deps, m.profile, name, width, m.raw)
}

func (m model) logInfo(msg string, args ...any) {
	if m.deps.Logger != nil {
		m.deps.Logger.Info(msg, args...)
	}
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(0, 1)
	header := m.st.Title.Render("profilegen") + "  " +
		m.st.Subtitle.Render("GitHub profile README generator") + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.st.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		banner = m.st.Help.Render("No workspace found (built-in themes only) • i init here")
	}

	if m.scr == screenInitConfirm {
		card := m.st.Card.Render(fmt.Sprintf("%s\n\nCreate profilegen.yaml, profile.yaml and themes/ in\n%s\n\n%s",
			m.st.Title.Render("Init workspace"),
			m.workspaceRoot,
			m.st.Help.Render("y confirm • any other key cancel"),
		))
		return wrap.Render(header + banner + "\n\n" + card)
	}

	previewTitle := "Preview"
	if m.previewTheme != "" {
		previewTitle = fmt.Sprintf("Preview: %s", m.previewTheme)
		if m.raw {
			previewTitle += " (markdown)"
		}
	}

	listStyle, previewStyle := m.st.cards(m.focusPreview)
	listCard := listStyle.Render(m.themes.View())
	previewCard := previewStyle.Render(m.st.Title.Render(previewTitle) + "\n" + m.preview.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, listCard, previewCard)

	status := statusLine(m.st, m.busy, m.toast, m.errMsg, m.width-4)
	help := m.st.Help.Render("↑/↓ move • enter preview • tab focus • m markdown/rendered • w write README • / filter • r reload • q quit")

	return wrap.Render(header + banner + "\n" + body + "\n" + status + "\n" + help)
}
