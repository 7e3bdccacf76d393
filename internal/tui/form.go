package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pmattila/hostadm/internal/report"
	"github.com/pmattila/hostadm/internal/sysadm"
)

type field struct {
	label string
	input textinput.Model
}

// form is a sequence of prompts for one action's parameters.
type form struct {
	act    action
	title  string
	fields []field
	focus  int
}

func newField(label, placeholder string) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	return field{label: label, input: ti}
}

func newPasswordField(label string) field {
	f := newField(label, "")
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func newForm(act action, title string) *form {
	f := &form{act: act, title: title}

	switch act {
	case actionReport:
		f.fields = []field{
			newField("Target directory", "."),
			newField("Max depth (0 = unlimited)", "0"),
			newField("Unit (K/M/G)", "M"),
			newField("Format (text/csv/html/json)", "text"),
			newField("Sort (name/size_asc/size_desc/mtime)", "name"),
			newField("Size threshold", "0"),
			newField("Modified within days (empty = off)", ""),
		}
	case actionAddUser:
		f.fields = []field{
			newField("Username", ""),
			newField("Full name", ""),
			newPasswordField("Password"),
			newField("Create home directory (y/n)", "y"),
		}
	case actionDeleteUser:
		f.fields = []field{
			newField("Username", ""),
			newField("Remove home directory (y/n)", "n"),
			newField("Archive home before delete (y/n)", "n"),
		}
	case actionUserInfo:
		f.fields = []field{
			newField("Username", ""),
		}
	case actionThreshold:
		f.fields = []field{
			newField("Path", "/"),
		}
	}

	return f
}

// focusCmd focuses the first field.
func (f *form) focusCmd() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[0].input.Focus()
}

func (f *form) onLastField() bool {
	return f.focus == len(f.fields)-1
}

func (f *form) next() tea.Cmd {
	return f.moveFocus(f.focus + 1)
}

func (f *form) prev() tea.Cmd {
	return f.moveFocus(f.focus - 1)
}

func (f *form) moveFocus(to int) tea.Cmd {
	if to < 0 || to >= len(f.fields) {
		return nil
	}
	f.fields[f.focus].input.Blur()
	f.focus = to
	return f.fields[f.focus].input.Focus()
}

// update forwards a message to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

// value returns the trimmed input, falling back to the placeholder so
// the shown default is the effective one.
func (f *form) value(i int) string {
	v := strings.TrimSpace(f.fields[i].input.Value())
	if v == "" {
		return f.fields[i].input.Placeholder
	}
	return v
}

func (f *form) view(theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(f.title))
	b.WriteString("\n\n")
	for i := range f.fields {
		b.WriteString(theme.Label.Render(f.fields[i].label))
		b.WriteString("\n")
		b.WriteString(f.fields[i].input.View())
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Help.Render("enter next/submit · tab/shift+tab move · esc cancel"))
	return b.String()
}

// submitCmd builds the backend call from the form values.
func (f *form) submitCmd(backend Backend) tea.Cmd {
	switch f.act {
	case actionReport:
		opts := report.Options{
			TargetDir:          f.value(0),
			MaxDepth:           atoiOr(f.value(1), 0),
			Unit:               f.value(2),
			Format:             report.Format(f.value(3)),
			SortKey:            report.SortKey(f.value(4)),
			SizeThreshold:      int64(atoiOr(f.value(5), 0)),
			ModifiedWithinDays: atoiOr(f.value(6), 0),
		}
		return func() tea.Msg {
			out, warnings, err := backend.GenerateReport(context.Background(), opts)
			return resultMsg{title: f.title, output: out, warnings: warnings, err: err}
		}

	case actionAddUser:
		opts := sysadm.AddUserOptions{
			Username:   f.value(0),
			FullName:   f.value(1),
			Password:   strings.TrimSpace(f.fields[2].input.Value()),
			CreateHome: yes(f.value(3)),
		}
		return func() tea.Msg {
			out, err := backend.AddUser(context.Background(), opts)
			return resultMsg{title: f.title, output: out, err: err}
		}

	case actionDeleteUser:
		opts := sysadm.DeleteUserOptions{
			Username:    f.value(0),
			RemoveHome:  yes(f.value(1)),
			ArchiveHome: yes(f.value(2)),
		}
		return func() tea.Msg {
			out, err := backend.DeleteUser(context.Background(), opts)
			return resultMsg{title: f.title, output: out, err: err}
		}

	case actionUserInfo:
		username := f.value(0)
		return func() tea.Msg {
			out, err := backend.UserInfo(context.Background(), username)
			return resultMsg{title: f.title, output: out, err: err}
		}

	case actionThreshold:
		path := f.value(0)
		return func() tea.Msg {
			out, err := backend.DiskThreshold(context.Background(), path)
			return resultMsg{title: f.title, output: out, err: err}
		}
	}

	return nil
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func yes(s string) bool {
	switch strings.ToLower(s) {
	case "y", "yes":
		return true
	}
	return false
}
