package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/terminal"
)

const (
	logDir      = "logs"
	logFileName = "vi-pong.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to logs/vi-pong.log when debug is set,
// rotating a file grown past maxLogSize. Otherwise output is discarded and nil is returned
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("vi-pong-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			log.SetOutput(io.Discard)
			return nil
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func main() {
	// Restores the terminal before the stack trace is printed
	defer func() { core.HandleCrash(recover()) }()

	if logFile := setupLogging(os.Getenv(constants.DebugEnvVar) != ""); logFile != nil {
		defer logFile.Close()
	}

	result, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result)
}

// run owns the screen for the duration of one game; the screen is finalized before returning
func run() (engine.Result, error) {
	cfg := engine.DefaultConfig()
	cfg.LeftPilot.Enabled = os.Getenv(constants.DemoEnvVar) != ""

	screen, err := terminal.Open()
	if err != nil {
		return engine.Result{}, fmt.Errorf("open terminal: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()

	screen.SetStyle(tcell.StyleDefault)
	width, height := terminal.SurfaceSize(screen.Size())

	poller := terminal.NewPoller(screen)
	defer poller.Close()

	game, err := engine.NewGame(cfg, render.NewCanvas(screen, render.DefaultPalette().Blank), poller,
		engine.NewMonotonicTimeProvider(), width, height)
	if err != nil {
		return engine.Result{}, err
	}

	return game.Run(), nil
}
