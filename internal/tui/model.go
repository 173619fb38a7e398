package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/domain"
)

// ChatPort is the TUI-facing subset of the recipe API.
type ChatPort interface {
	ListRecipes() ([]domain.Recipe, error)
	Ask(recipeID int64, message string) (string, error)
}

type mode int

const (
	modePicking mode = iota
	modeChatting
)

type chatLine struct {
	fromUser bool
	text     string
}

// Model is the Bubble Tea model for the chat client. It starts on a recipe
// picker and switches to a per-recipe transcript once one is selected.
type Model struct {
	client     ChatPort
	input      textinput.Model
	viewport   viewport.Model
	recipes    []domain.Recipe
	transcript []chatLine
	current    domain.Recipe
	mode       mode
	cursor     int
	status     string
	ready      bool
}

// New creates a new chat model instance.
func New(client ChatPort) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about this recipe and press Enter"
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{client: client, input: ti, viewport: vp, status: "Loading recipes..."}
}

// Init loads the recipe list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadRecipes)
}

type recipesMsg struct {
	recipes []domain.Recipe
	err     error
}

func (m Model) loadRecipes() tea.Msg {
	recipes, err := m.client.ListRecipes()
	return recipesMsg{recipes: recipes, err: err}
}

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 2 + 1 + ih + 1 // header + spacer, status line
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-th)
		m.viewport.SetContent(m.renderBody())
		return m, nil
	case recipesMsg:
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
		} else {
			m.recipes = msg.recipes
			m.status = fmt.Sprintf("%d recipes. Up/Down to browse, Enter to chat.", len(m.recipes))
		}
		m.viewport.SetContent(m.renderBody())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch m.mode {
		case modePicking:
			return m.updatePicking(msg)
		case modeChatting:
			return m.updateChatting(msg)
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updatePicking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "down":
		if len(m.recipes) > 0 {
			m.cursor = (m.cursor + 1) % len(m.recipes)
			m.viewport.SetContent(m.renderBody())
		}
	case "up":
		if len(m.recipes) > 0 {
			m.cursor = (m.cursor - 1 + len(m.recipes)) % len(m.recipes)
			m.viewport.SetContent(m.renderBody())
		}
	case "enter":
		if len(m.recipes) > 0 {
			m.current = m.recipes[m.cursor]
			m.mode = modeChatting
			m.transcript = nil
			m.input.Focus()
			m.status = fmt.Sprintf("Chatting about %q. Esc to go back.", m.current.Title)
			m.viewport.SetContent(m.renderBody())
			return m, textinput.Blink
		}
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateChatting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modePicking
		m.input.Blur()
		m.input.SetValue("")
		m.status = fmt.Sprintf("%d recipes. Up/Down to browse, Enter to chat.", len(m.recipes))
		m.viewport.SetContent(m.renderBody())
		return m, nil
	case "enter":
		question := strings.TrimSpace(m.input.Value())
		if question == "" {
			return m, nil
		}
		m.transcript = append(m.transcript, chatLine{fromUser: true, text: question})
		answer, err := m.client.Ask(m.current.ID, question)
		if err != nil {
			m.status = "Error: " + err.Error()
		} else {
			m.transcript = append(m.transcript, chatLine{text: answer})
			m.status = fmt.Sprintf("Chatting about %q. Esc to go back.", m.current.Title)
		}
		m.input.SetValue("")
		m.viewport.SetContent(m.renderBody())
		m.viewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Recipe Chat")
	body := transcriptBoxStyle.Render(m.viewport.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	if m.mode == modePicking {
		return header + "\n" + body + "\n" + status
	}
	input := inputBoxStyle.Render(m.input.View())
	return header + "\n" + body + "\n" + input + "\n" + status
}

func (m Model) renderBody() string {
	if m.mode == modePicking {
		return m.renderRecipeList()
	}
	return m.renderTranscript()
}

func (m Model) renderRecipeList() string {
	if len(m.recipes) == 0 {
		return "No recipes yet."
	}
	var b strings.Builder
	for i, r := range m.recipes {
		line := fmt.Sprintf("  %s", r.Title)
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %s", r.Title))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderTranscript() string {
	if len(m.transcript) == 0 {
		return fmt.Sprintf("Ask anything about %q.", m.current.Title)
	}
	var b strings.Builder
	for _, line := range m.transcript {
		if line.fromUser {
			b.WriteString(userStyle.Render("You: ") + line.text)
		} else {
			b.WriteString(botStyle.Render("Assistant: ") + line.text)
		}
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	userStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
