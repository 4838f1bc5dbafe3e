package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"jsfmt/internal/driver"
	"jsfmt/internal/ui"
)

// useProgressUI decides on the Bubble Tea view from the --ui value.
// "auto" follows the terminal; plain output (stdout, json, quiet) never
// gets the view, even with --ui=on.
func useProgressUI(flag string, plain, tty bool) (bool, error) {
	value := strings.ToLower(strings.TrimSpace(flag))
	var on bool
	switch value {
	case "", "auto":
		on = tty
	case "on":
		on = true
	case "off":
		on = false
	default:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", flag)
		}
		on = b
	}
	return on && !plain, nil
}

type formatOutcome struct {
	results []driver.FormatResult
	err     error
}

// runFormatWithUI runs FormatPaths in the background while a Bubble Tea
// progress view consumes its events. Quitting the view cancels the run.
func runFormatWithUI(ctx context.Context, title string, paths []string, req *driver.FormatOptions) ([]driver.FormatResult, error) {
	if req == nil {
		return nil, fmt.Errorf("missing format request")
	}
	files, err := driver.CollectFiles(ctx, paths, req.Files)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, driver.ErrNoFiles
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan formatOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.FormatPaths(ctx, paths, reqCopy)
		outcomeCh <- formatOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithContext(ctx))
	final, uiErr := program.Run()
	if uiErr != nil || !ui.Completed(final) {
		// UI закрыли раньше времени: отменяем прогон и дочитываем события,
		// чтобы воркеры не встали на канале
		cancel()
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
