package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"ovies_landing_go/config"
	"ovies_landing_go/services"
	"ovies_landing_go/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg := config.Load()

	content, err := services.LoadLandingContent()
	if err != nil {
		log.Fatalf("Failed to load landing content: %v", err)
	}

	// Keep submitter logs off the terminal UI
	if f, err := tea.LogToFile("leadtui.log", "leadtui"); err == nil {
		defer f.Close()
	}

	controller := services.NewLeadFormController(
		services.NewLeadSubmitterFromConfig(cfg),
		services.WithSubmitTimeout(cfg.LeadSubmitTimeout),
	)

	hostname, _ := os.Hostname()
	ctx := services.WithLeadMetadata(context.Background(), services.LeadMetadata{
		UserAgent: "leadtui/" + hostname,
		Source:    "tui",
	})

	p := tea.NewProgram(tui.NewFormModel(ctx, controller, content.Offer))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "leadtui: %v\n", err)
		os.Exit(1)
	}
}
