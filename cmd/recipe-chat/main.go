package main

import (
	"flag"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var serverURL, token string
	flag.StringVar(&serverURL, "server", "http://localhost:8000", "Recipe server base URL")
	flag.StringVar(&token, "token", "", "Firebase ID token (defaults to RECIPE_ID_TOKEN)")
	flag.Parse()

	if token == "" {
		token = os.Getenv("RECIPE_ID_TOKEN")
	}

	client := tui.NewClient(tui.ClientConfig{BaseURL: serverURL, Token: token})
	program := tea.NewProgram(tui.New(client), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatal("tui crashed", "error", err)
	}
}
