package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishwas-tech29/Smart-Research-Assistant/internal/assistant"
	"github.com/vishwas-tech29/Smart-Research-Assistant/internal/config"
	"github.com/vishwas-tech29/Smart-Research-Assistant/internal/logging"
	"github.com/vishwas-tech29/Smart-Research-Assistant/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to the config file (default: ~/.research-assistant/config.yaml)")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	uploadDelay := flag.Duration("upload-delay", 0, "override the simulated upload delay")
	answerDelay := flag.Duration("answer-delay", 0, "override the simulated answer delay")
	failureRate := flag.Float64("failure-rate", -1, "override the failure injection rate (0 disables, 1 always fails)")
	startDir := flag.String("start-dir", "", "directory the document browser opens in")
	logPath := flag.String("log", "", "override the session log file")
	flag.Parse()

	path := *configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			fmt.Println("failed to resolve config path:", err)
			os.Exit(1)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Println("failed to load config:", err)
		os.Exit(1)
	}

	simCfg := assistant.Config{
		UploadDelay: pickDelay(*uploadDelay, cfg.UploadDelay()),
		AnswerDelay: pickDelay(*answerDelay, cfg.AnswerDelay()),
		FailureRate: cfg.Simulation.FailureRate,
	}
	if *failureRate >= 0 {
		simCfg.FailureRate = *failureRate
	}

	sessionLog := cfg.Log.Path
	if *logPath != "" {
		sessionLog = *logPath
	}
	logger, err := logging.New(sessionLog)
	if err != nil {
		fmt.Println("failed to open session log:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	browseDir := cfg.Browser.StartDir
	if *startDir != "" {
		browseDir = *startDir
	}

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Assistant: assistant.NewSimulator(simCfg),
			StartDir:  browseDir,
			Logger:    logger,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}

func pickDelay(override, configured time.Duration) time.Duration {
	if override > 0 {
		return override
	}
	return configured
}
