package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-bikeshare/config"
	"github.com/andareed/siftly-bikeshare/logging"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	// Quiet until --debug is known; the TUI owns the terminal.
	log.SetOutput(io.Discard)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		fmt.Fprintln(os.Stderr, config.Usage())
		os.Exit(2)
	}

	// --- EARLY EXIT ---
	if cfg.ShowVersion {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.SetupLogging(cfg.DebugLog)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	logging.Infof("siftly-bikeshare: Started (data_dir=%s)", cfg.DataDir)

	m, err := newModel(cfg)
	if err != nil {
		logging.Errorf("model setup failed: %v", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}
