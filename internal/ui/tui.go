package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/csvtrim/csvtrim/internal/csvio"
	"github.com/csvtrim/csvtrim/internal/engine"
	"github.com/csvtrim/csvtrim/internal/profile"
	"github.com/csvtrim/csvtrim/internal/table"
)

type viewMode int

const (
	viewFiles viewMode = iota
	viewProfiles
	viewWizard
	viewReview
)

// tuiModel is the full-screen session shell. The huh wizard form is
// embedded the same way the plain session runs it, just driven by this
// model's Update instead of form.Run.
type tuiModel struct {
	session *Session
	files   []string

	mode   viewMode
	cursor int

	selectedFile string
	profileName  string
	appliedAs    profile.Profile
	result       table.Table
	outPath      string
	command      CommandSpec
	reviewText   string

	wizardForm *huh.Form
	wizardOpts *WizardOptions

	status string
}

func newTUIModel(s *Session, files []string) tuiModel {
	return tuiModel{session: s, files: files, mode: viewFiles}
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == viewWizard && m.wizardForm != nil {
		formModel, cmd := m.wizardForm.Update(msg)
		m.wizardForm = formModel.(*huh.Form)
		switch m.wizardForm.State {
		case huh.StateCompleted:
			name, p, err := BuildWizardProfile(*m.wizardOpts)
			if err == nil {
				err = m.session.Store.Set(name, p)
			}
			if err == nil {
				err = m.session.Store.Save()
			}
			m.wizardForm = nil
			m.wizardOpts = nil
			m.mode = viewProfiles
			m.cursor = 0
			if err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("Saved profile %q", name)
			}
		case huh.StateAborted:
			m.wizardForm = nil
			m.wizardOpts = nil
			m.mode = viewProfiles
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.itemCount()-1 {
				m.cursor++
			}
		case "b", "esc":
			m = m.goBack()
		case "n":
			if m.mode == viewProfiles {
				m = m.startWizard()
				return m, m.wizardForm.Init()
			}
		case "w":
			if m.mode == viewReview {
				m = m.writeOutput()
			}
		case "c":
			if m.mode == viewReview {
				if err := CopyCommand(m.command); err != nil {
					m.status = fmt.Sprintf("Clipboard unavailable: %v", err)
				} else {
					m.status = "Command copied to clipboard."
				}
			}
		case "enter":
			m = m.handleSelection()
		}
	}
	return m, nil
}

func (m tuiModel) itemCount() int {
	switch m.mode {
	case viewFiles:
		return len(m.files)
	case viewProfiles:
		// profiles plus the create-new entry
		return m.session.Store.Len() + 1
	default:
		return 0
	}
}

func (m tuiModel) goBack() tuiModel {
	switch m.mode {
	case viewProfiles:
		m.mode = viewFiles
	case viewReview:
		m.mode = viewProfiles
		m.reviewText = ""
	}
	m.cursor = 0
	m.status = ""
	return m
}

func (m tuiModel) startWizard() tuiModel {
	m.wizardOpts = &WizardOptions{}
	m.wizardForm = buildProfileForm(m.wizardOpts)
	m.mode = viewWizard
	m.status = ""
	return m
}

func (m tuiModel) handleSelection() tuiModel {
	switch m.mode {
	case viewFiles:
		if m.cursor < len(m.files) {
			m.selectedFile = filepath.Join(m.session.Dir, m.files[m.cursor])
			m.mode = viewProfiles
			m.cursor = 0
			m.status = ""
		}
	case viewProfiles:
		names := m.session.Store.Names()
		if m.cursor >= len(names) {
			return m.startWizard()
		}
		return m.applyProfile(names[m.cursor])
	}
	return m
}

func (m tuiModel) applyProfile(name string) tuiModel {
	p, ok := m.session.Store.Get(name)
	if !ok {
		m.status = fmt.Sprintf("profile %q not found", name)
		return m
	}
	t, err := csvio.Read(m.selectedFile)
	if err != nil {
		m.status = err.Error()
		return m
	}
	result, report, err := engine.ApplyWithOptions(t, p, engine.Options{
		DatetimeLayouts: m.session.Config.DatetimeLayouts,
	})
	m.session.Log.LogApply(name, m.selectedFile, t.RowCount(), result.RowCount(), err)
	if err != nil {
		m.status = err.Error()
		return m
	}

	m.profileName = name
	m.appliedAs = p
	m.result = result
	m.outPath = csvio.OutputPath(m.selectedFile, m.session.Config.OutputDir, m.session.Config.OutputPrefix)
	m.command = BuildCommand(m.selectedFile, m.outPath, name, p)
	m.reviewText = RenderPreview(previewTable(result, p), m.session.Config.PreviewRows) +
		"\n" + RenderReviewScreen(name, report, m.command)
	m.mode = viewReview
	m.cursor = 0
	m.status = ""
	return m
}

func (m tuiModel) writeOutput() tuiModel {
	if m.outPath == m.selectedFile {
		m.status = fmt.Sprintf("Refusing to overwrite the input file %s", m.selectedFile)
		return m
	}
	if err := csvio.WriteCSV(m.outPath, m.result, m.appliedAs.UseFirstRowAsHeader); err != nil {
		m.status = err.Error()
		return m
	}
	m.status = fmt.Sprintf("Wrote %s (%d rows)", m.outPath, m.result.RowCount())
	return m
}

var (
	tuiTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	tuiCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	tuiStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m tuiModel) View() string {
	var b strings.Builder

	switch m.mode {
	case viewWizard:
		if m.wizardForm != nil {
			b.WriteString(m.wizardForm.View())
		}
	case viewFiles:
		b.WriteString(tuiTitleStyle.Render(fmt.Sprintf("csvtrim | %s", m.session.Dir)))
		b.WriteString("\n\nPick a file to trim:\n")
		if len(m.files) == 0 {
			b.WriteString("  (no .csv or .xlsx files here)\n")
		}
		for i, f := range m.files {
			b.WriteString(m.renderItem(i, f))
		}
		b.WriteString("\n[enter] select  [q] quit\n")
	case viewProfiles:
		b.WriteString(tuiTitleStyle.Render(filepath.Base(m.selectedFile)))
		b.WriteString("\n\nPick a trimming profile:\n")
		names := m.session.Store.Names()
		for i, n := range names {
			b.WriteString(m.renderItem(i, n))
		}
		b.WriteString(m.renderItem(len(names), choiceNewProfile))
		b.WriteString("\n[enter] select  [n] new profile  [b] back  [q] quit\n")
	case viewReview:
		b.WriteString(m.reviewText)
		b.WriteString("\n\n[w] write  [c] copy command  [b] back  [q] quit\n")
	}

	if m.status != "" {
		b.WriteString(tuiStatusStyle.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

func (m tuiModel) renderItem(i int, label string) string {
	if i == m.cursor {
		return tuiCursorStyle.Render("> "+label) + "\n"
	}
	return "  " + label + "\n"
}

// RunTUI starts the full-screen session shell.
func RunTUI(s *Session) error {
	files, err := csvio.FindInputs(s.Dir)
	if err != nil {
		return err
	}
	program := tea.NewProgram(newTUIModel(s, files), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
