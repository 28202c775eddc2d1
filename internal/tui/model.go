package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

type gameManager interface {
	MakeTurn(ctx context.Context, sessionID string, cell int) (entity.Status, error)
	JumpTo(ctx context.Context, sessionID string, step int) (entity.Status, error)
	Restart(ctx context.Context, sessionID string) (entity.Status, error)
}

type focus int

const (
	focusBoard focus = iota
	focusHistory
)

// StatusMsg carries the outcome of an intent sent to the game manager.
type StatusMsg struct {
	Status entity.Status
	Err    error
}

// Model is the bubbletea model of one game session.
type Model struct {
	ctx     context.Context
	logger  *slog.Logger
	manager gameManager

	sessionID string
	status    entity.Status
	marks     Marks

	cursor   int
	selected int
	focus    focus

	keys     keyMap
	help     help.Model
	notice   string
	err      error
	quitting bool
}

func New(ctx context.Context, logger *slog.Logger, manager gameManager, session *entity.Session, marks Marks) Model {
	return Model{
		ctx:       ctx,
		logger:    logger.With("component", "tui", "sessionID", session.ID),
		manager:   manager,
		sessionID: session.ID,
		status:    session.Status,
		marks:     marks,
		cursor:    4,
		selected:  session.Status.Step,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case StatusMsg:
		return m.applyStatus(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NewGame):
		return m, m.restart()

	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusBoard {
			m.focus = focusHistory
		} else {
			m.focus = focusBoard
		}

	case key.Matches(msg, m.keys.Cell):
		cell := int(msg.String()[0] - '1')
		m.cursor = cell
		return m, m.makeTurn(cell)

	case key.Matches(msg, m.keys.Prev):
		m.focus = focusHistory
		m.selectEntry(m.selected - 1)

	case key.Matches(msg, m.keys.Next):
		m.focus = focusHistory
		m.selectEntry(m.selected + 1)

	case key.Matches(msg, m.keys.Select):
		if m.focus == focusHistory {
			return m, m.jumpTo(m.selected)
		}
		return m, m.makeTurn(m.cursor)

	case key.Matches(msg, m.keys.Up):
		if m.focus == focusHistory {
			m.selectEntry(m.selected - 1)
		} else {
			m.moveCursor(-1, 0)
		}

	case key.Matches(msg, m.keys.Down):
		if m.focus == focusHistory {
			m.selectEntry(m.selected + 1)
		} else {
			m.moveCursor(1, 0)
		}

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)

	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	}

	return m, nil
}

func (m Model) applyStatus(msg StatusMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil && !usecase.IsRejection(msg.Err) {
		m.logger.Error("game manager failed", "error", msg.Err)
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	m.status = msg.Status
	m.selected = msg.Status.Step
	m.notice = ""

	if msg.Err != nil {
		m.notice = rejectionNotice(msg.Err)
	}

	return m, nil
}

func (m *Model) moveCursor(dRow, dCol int) {
	row := (m.cursor/3 + dRow + 3) % 3
	col := (m.cursor%3 + dCol + 3) % 3
	m.cursor = row*3 + col
}

func (m *Model) selectEntry(step int) {
	if step < 0 || step >= m.status.Steps {
		return
	}

	m.selected = step
}

func (m Model) makeTurn(cell int) tea.Cmd {
	ctx, manager, sessionID := m.ctx, m.manager, m.sessionID

	return func() tea.Msg {
		status, err := manager.MakeTurn(ctx, sessionID, cell)
		return StatusMsg{Status: status, Err: err}
	}
}

func (m Model) jumpTo(step int) tea.Cmd {
	ctx, manager, sessionID := m.ctx, m.manager, m.sessionID

	return func() tea.Msg {
		status, err := manager.JumpTo(ctx, sessionID, step)
		return StatusMsg{Status: status, Err: err}
	}
}

func (m Model) restart() tea.Cmd {
	ctx, manager, sessionID := m.ctx, m.manager, m.sessionID

	return func() tea.Msg {
		status, err := manager.Restart(ctx, sessionID)
		return StatusMsg{Status: status, Err: err}
	}
}

// Err - the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Status() entity.Status {
	return m.status
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	board := paneStyle
	moves := paneStyle
	if m.focus == focusBoard {
		board = focusedPaneStyle
	} else {
		moves = focusedPaneStyle
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Tic-tac-toe"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		board.Render(m.renderBoard()),
		" ",
		moves.Render(m.renderHistory()),
	))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(StatusLine(m.status, m.marks)))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderBoard() string {
	rows := make([]string, 0, 5)
	separator := gridStyle.Render("───┼───┼───")

	for row := 0; row < 3; row++ {
		if row > 0 {
			rows = append(rows, separator)
		}

		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			cells[col] = m.renderCell(row*3 + col)
		}

		rows = append(rows, strings.Join(cells, gridStyle.Render("│")))
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderCell(cell int) string {
	mark := m.status.Board[cell]
	symbol := m.marks.Symbol(mark)

	switch mark {
	case entity.PlayerX:
		symbol = firstStyle.Render(symbol)
	case entity.PlayerO:
		symbol = secondStyle.Render(symbol)
	}

	if m.focus == focusBoard && cell == m.cursor {
		return cursorStyle.Render(symbol)
	}

	return cellStyle.Render(symbol)
}

func (m Model) renderHistory() string {
	lines := make([]string, 0, m.status.Steps)

	for step := 0; step < m.status.Steps; step++ {
		pointer := "  "
		if step == m.status.Step {
			pointer = "• "
		}

		line := pointer + MoveLabel(step, m.status.Moves)
		if step == m.selected {
			lines = append(lines, selectedEntryStyle.Render(line))
		} else {
			lines = append(lines, entryStyle.Render(line))
		}
	}

	return strings.Join(lines, "\n")
}

// rejectionNotice - the reason without the use case prefix.
func rejectionNotice(err error) string {
	if reason := errors.Unwrap(err); reason != nil {
		return reason.Error()
	}

	return err.Error()
}
