// Package tui implements the interactive operator menu: a list of
// administration actions, a prompt form per action, and a scrollable
// viewer for the produced output.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pmattila/hostadm/internal/report"
	"github.com/pmattila/hostadm/internal/sysadm"
)

// Backend runs the actions selected from the menu. Each call is
// synchronous and independent; the menu blocks on it and shows the
// result in the viewer.
type Backend interface {
	GenerateReport(ctx context.Context, opts report.Options) (string, []string, error)
	AddUser(ctx context.Context, opts sysadm.AddUserOptions) (string, error)
	DeleteUser(ctx context.Context, opts sysadm.DeleteUserOptions) (string, error)
	UserInfo(ctx context.Context, username string) (string, error)
	BlockDevices(ctx context.Context) (string, error)
	Mounts(ctx context.Context) (string, error)
	IOStats(ctx context.Context) (string, error)
	DiskThreshold(ctx context.Context, path string) (string, error)
}

type action int

const (
	actionReport action = iota
	actionAddUser
	actionDeleteUser
	actionUserInfo
	actionBlockDevices
	actionMounts
	actionIOStats
	actionThreshold
)

type menuItem struct {
	name string
	desc string
	act  action
}

func (i menuItem) Title() string       { return i.name }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.name }

type mode int

const (
	modeMenu mode = iota
	modeForm
	modeResult
)

// resultMsg carries the outcome of one backend action.
type resultMsg struct {
	title    string
	output   string
	warnings []string
	err      error
}

type model struct {
	backend Backend
	theme   Theme

	mode   mode
	menu   list.Model
	form   *form
	view   viewport.Model
	result resultMsg

	width  int
	height int
}

// Run starts the interactive menu and blocks until the user quits.
func Run(backend Backend) error {
	items := []list.Item{
		menuItem{"Disk usage report", "Scan a directory and render a usage report", actionReport},
		menuItem{"Add user", "Create a local user account", actionAddUser},
		menuItem{"Delete user", "Remove a local user account", actionDeleteUser},
		menuItem{"User info", "Show account details", actionUserInfo},
		menuItem{"Block devices", "List block devices", actionBlockDevices},
		menuItem{"Mount table", "Show mounted filesystems", actionMounts},
		menuItem{"I/O statistics", "Show device I/O statistics", actionIOStats},
		menuItem{"Disk threshold check", "Check filesystem usage against the threshold", actionThreshold},
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "hostadm"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	m := model{
		backend: backend,
		theme:   DefaultTheme(),
		mode:    modeMenu,
		menu:    menu,
		view:    viewport.New(0, 0),
	}

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menu.SetSize(msg.Width, msg.Height-2)
		m.view.Width = msg.Width
		m.view.Height = msg.Height - 4
		return m, nil

	case resultMsg:
		m.result = msg
		m.view.SetContent(m.resultContent())
		m.view.GotoTop()
		m.mode = modeResult
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeMenu:
			return m.updateMenu(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeResult:
			return m.updateResult(msg)
		}
	}

	if m.mode == modeForm && m.form != nil {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		item, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		return m.selectAction(item)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// selectAction either runs the action immediately (passthroughs with
// no parameters) or opens its prompt form.
func (m model) selectAction(item menuItem) (tea.Model, tea.Cmd) {
	switch item.act {
	case actionBlockDevices, actionMounts, actionIOStats:
		return m, runPassthrough(m.backend, item)
	}

	m.form = newForm(item.act, item.name)
	m.mode = modeForm
	return m, m.form.focusCmd()
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		m.mode = modeMenu
		return m, nil
	case "enter":
		if m.form.onLastField() {
			return m, m.form.submitCmd(m.backend)
		}
		return m, m.form.next()
	case "tab", "down":
		return m, m.form.next()
	case "shift+tab", "up":
		return m, m.form.prev()
	}
	return m, m.form.update(msg)
}

func (m model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "enter":
		m.form = nil
		m.mode = modeMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// runPassthrough executes a parameterless system information action.
func runPassthrough(backend Backend, item menuItem) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var out string
		var err error
		switch item.act {
		case actionBlockDevices:
			out, err = backend.BlockDevices(ctx)
		case actionMounts:
			out, err = backend.Mounts(ctx)
		case actionIOStats:
			out, err = backend.IOStats(ctx)
		}
		return resultMsg{title: item.name, output: out, err: err}
	}
}

func (m model) resultContent() string {
	var b strings.Builder
	for _, w := range m.result.warnings {
		b.WriteString(m.theme.Warning.Render("warning: " + w))
		b.WriteString("\n")
	}
	if m.result.err != nil {
		b.WriteString(m.theme.Error.Render("error: " + m.result.err.Error()))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(m.result.output)
	return b.String()
}

func (m model) View() string {
	switch m.mode {
	case modeForm:
		return m.form.view(m.theme)
	case modeResult:
		var b strings.Builder
		b.WriteString(m.theme.Title.Render(m.result.title))
		b.WriteString("\n\n")
		b.WriteString(m.view.View())
		b.WriteString("\n")
		b.WriteString(m.theme.Help.Render("↑/↓ scroll · esc back"))
		return b.String()
	default:
		return m.menu.View() + "\n" + m.theme.Help.Render("enter select · q quit")
	}
}
