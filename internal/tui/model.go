package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/buscaminas/internal/mines"
)

const help = "h/j/k/l move • x open • s shuffle • d debug view • q quit"

// Model is a thin bubbletea front end over a board: it moves a cursor,
// forwards open and shuffle commands and paints the board's dumps.
type Model struct {
	board *mines.Board
	log   logrus.FieldLogger

	row, col int
	split    bool

	width, height int
}

func New(board *mines.Board, log logrus.FieldLogger) Model {
	return Model{
		board: board,
		log:   log,
	}
}

// Run blocks until the player quits.
func Run(board *mines.Board, log logrus.FieldLogger, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(board, log), opts...).Run()
	return err
}

func (m Model) Cursor() (row, col int) { return m.row, m.col }

func (m Model) Split() bool { return m.split }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "k", "up":
			m.up()
		case "j", "down":
			m.down()
		case "h", "left":
			m.left()
		case "l", "right":
			m.right()
		case "x", "enter", " ", "space":
			m.open()
			m.right()
		case "s":
			m.board.Shuffle()
			m.log.Info("board reshuffled")
		case "d":
			m.split = !m.split
			m.log.WithField("split", m.split).Debug("toggled debug view")
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// Cursor movement wraps around the edges.

func (m *Model) up() {
	m.row = (m.row - 1 + m.board.Rows()) % m.board.Rows()
}

func (m *Model) down() {
	m.row = (m.row + 1) % m.board.Rows()
}

func (m *Model) left() {
	m.col = (m.col - 1 + m.board.Cols()) % m.board.Cols()
}

func (m *Model) right() {
	m.col = (m.col + 1) % m.board.Cols()
}

func (m *Model) open() {
	if err := m.board.Open(m.row, m.col); err != nil {
		m.log.WithError(err).Error("unable to open cell")
		return
	}
	m.log.WithFields(logrus.Fields{"row": m.row, "col": m.col}).Debug("cell opened")
}

func (m Model) View() string {
	var dump *mines.Dump
	if m.split {
		dump = m.board.DumpSplit()
	} else {
		dump = m.board.DumpCover()
	}

	var b strings.Builder
	for row := range dump.Rows() {
		for col := range dump.Cols() {
			if col > 0 {
				b.WriteByte(' ')
			}
			if row == m.row && col == m.col {
				b.WriteString(cursorStyle.Render("@"))
			} else {
				b.WriteString(renderGlyph(dump.At(row, col)))
			}
		}
		b.WriteByte('\n')
	}

	cover := m.board.DumpCover()
	opened := cover.Len() - cover.Count(mines.GlyphHidden)
	b.WriteByte('\n')
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"%dx%d • %d mines • %d opened • cursor %d:%d",
		m.board.Rows(), m.board.Cols(), m.board.Mines(), opened, m.row, m.col,
	)))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(help))

	if m.width == 0 || m.height == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
