package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mwiens91/jrnl/internal/editor"
	"github.com/mwiens91/jrnl/internal/journal"
)

var pickStyle = lipgloss.NewStyle().Margin(1, 2)

// pickItem is one existing entry in the picker list.
type pickItem struct {
	date    time.Time
	preview string
}

func (i pickItem) Title() string       { return i.date.Format("2006-01-02") }
func (i pickItem) Description() string { return i.preview }
func (i pickItem) FilterValue() string { return i.date.Format("2006-01-02") }

// pickModel drives the entry picker.
type pickModel struct {
	list   list.Model
	choice *pickItem
}

func (m pickModel) Init() tea.Cmd { return nil }

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(pickItem); ok {
				m.choice = &item
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := pickStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickModel) View() string {
	return pickStyle.Render(m.list.View())
}

// pickCmd shows an interactive picker over existing entries and opens the
// chosen one in the editor.
func (a *App) pickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick an existing entry to open",
		RunE: func(cmd *cobra.Command, _ []string) error {
			index, err := journal.BuildIndex(a.config.JournalPath)
			if err != nil {
				return err
			}
			if len(index) == 0 {
				return journal.ErrNoEntries
			}

			// Newest first
			items := make([]list.Item, 0, len(index))
			for i := len(index) - 1; i >= 0; i-- {
				items = append(items, pickItem{
					date:    index[i],
					preview: entryPreview(journal.EntryPath(a.config.JournalPath, index[i])),
				})
			}

			l := list.New(items, list.NewDefaultDelegate(), 0, 0)
			l.Title = "journal entries"

			program := tea.NewProgram(pickModel{list: l}, tea.WithAltScreen())
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("running picker: %w", err)
			}

			choice := final.(pickModel).choice
			if choice == nil {
				return nil
			}

			editorName, err := editor.Choose(a.editorFlag, a.config.Editor)
			if err != nil {
				return err
			}
			return journal.OpenEntry(a.config.JournalPath, choice.date, editor.Command{Name: editorName}, journal.OpenOptions{
				ReadOnly: true,
				Now:      a.now,
				Stderr:   cmd.ErrOrStderr(),
			})
		},
	}
}

// entryPreview returns the first non-blank line of an entry, truncated to
// fit a list row.
func entryPreview(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		const maxPreview = 80
		if len(line) > maxPreview {
			line = line[:maxPreview]
		}
		return line
	}
	return ""
}
