package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/maze3d/audio"
	"github.com/lixenwraith/maze3d/engine"
	"github.com/lixenwraith/maze3d/terminal"
)

var (
	colorFlag = flag.String("color", "", "Color override: auto, on, off")
	logFlag   = flag.String("log", "", "Write a debug log to this file")
	debugFlag = flag.Bool("debug", false, "Log at debug level")
)

func main() {
	flag.Parse()
	setupLogging()

	settings, err := engine.LoadSettings()
	if err != nil {
		log.WithError(err).Debug("Using default settings")
	}
	switch *colorFlag {
	case "auto", "on", "off":
		settings.Colors = *colorFlag
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace hits
	// stderr, or the trace is unreadable in raw mode
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\nmaze3d crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	// Audio failure is not fatal; the engine degrades to silence
	audioEngine := audio.NewEngine()
	if err := audioEngine.Start(); err != nil {
		log.WithError(err).Warn("Audio unavailable")
	}
	defer audioEngine.Stop()

	engine.NewGame(screen, audioEngine, settings).Run()
}

// setupLogging routes logrus away from the terminal, which tcell owns.
// Without -log, logging is discarded entirely.
func setupLogging() {
	if *logFlag == "" {
		log.SetOutput(io.Discard)
		return
	}

	f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)

	if *debugFlag {
		log.SetLevel(log.DebugLevel)
	}
}
