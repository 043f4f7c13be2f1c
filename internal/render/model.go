package render

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"reviewboard/internal/domain"
)

const heading = "all Reviews"

var (
	headingStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	rowStyle     = lipgloss.NewStyle()
	hintStyle    = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// Fetcher loads the review list from the endpoint
type Fetcher interface {
	ListReviews(ctx context.Context) ([]domain.Review, error)
}

type reviewsMsg []domain.Review

type fetchErrMsg struct{ err error }

// Model is the review list view. It starts empty and fills in once the single
// fetch issued by Init resolves.
type Model struct {
	ctx     context.Context
	fetcher Fetcher
	log     zerolog.Logger
	reviews []domain.Review
}

// NewModel creates the view model
func NewModel(ctx context.Context, f Fetcher, l zerolog.Logger) Model {
	return Model{ctx: ctx, fetcher: f, log: l}
}

// Init issues the one and only fetch
func (m Model) Init() tea.Cmd {
	return fetchCmd(m.ctx, m.fetcher)
}

func fetchCmd(ctx context.Context, f Fetcher) tea.Cmd {
	return func() tea.Msg {
		rs, err := f.ListReviews(ctx)
		if err != nil {
			return fetchErrMsg{err: err}
		}
		return reviewsMsg(rs)
	}
}

// Update handles fetch results and quit keys
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reviewsMsg:
		m.reviews = []domain.Review(msg)
		return m, nil
	case fetchErrMsg:
		// the list stays empty, nothing is surfaced to the user
		m.log.Debug().Err(msg.err).Msg("fetch reviews failed")
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

// Rows returns one visible line per review, in response order
func (m Model) Rows() []string {
	rows := make([]string, 0, len(m.reviews))
	for _, r := range m.reviews {
		rows = append(rows, r.Title)
	}
	return rows
}

// View renders the heading and one row per review
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(heading))
	b.WriteString("\n")
	for _, row := range m.Rows() {
		b.WriteString(rowStyle.Render(row))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("q to quit"))
	b.WriteString("\n")
	return b.String()
}
