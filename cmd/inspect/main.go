package main

import (
	"chatty/errors"
	"chatty/internal"
	"chatty/repositories"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Inspect error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// Read-only, the chat session may hold the lock.
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	inspector := Inspector{
		artifacts: repositories.NewArtifactRepository(db, log),
		exchanges: repositories.NewExchangeRepository(db, log, &config.TranscriptLimit),
	}
	if err := inspector.Render(os.Stdout); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

type Inspector struct {
	artifacts repositories.IArtifactRepository
	exchanges repositories.IExchangeRepository
}

// Render prints the training runs, the current model and the latest exchanges.
func (i Inspector) Render(out io.Writer) error {
	runs, err := i.artifacts.ListRuns()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Training runs")
	table := newTable(out, []string{"Run", "Trained at", "Vocabulary", "Labels", "Current"})
	for _, run := range runs {
		current := ""
		if run.Current {
			current = "*"
		}
		table.Append([]string{
			run.RunID.String(),
			run.TrainedAt.Format(time.DateTime),
			fmt.Sprint(run.InputSize),
			fmt.Sprint(run.OutputSize),
			current,
		})
	}
	table.Render()

	artifacts, err := i.artifacts.LoadArtifacts()
	switch {
	case errors.Is(err, errors.ErrArtifactsNotFound):
		fmt.Fprintln(out, "\nNo trained model")
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "\nCurrent model %s: %d words\n", artifacts.RunID, len(artifacts.Vocabulary))
		table = newTable(out, []string{"#", "Intent"})
		for idx, label := range artifacts.Labels {
			table.Append([]string{fmt.Sprint(idx), label})
		}
		table.Render()
	}

	exchanges, _, err := i.exchanges.GetExchanges(nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nLatest exchanges")
	table = newTable(out, []string{"At", "Lang", "Intent", "Probability", "Message", "Response"})
	for _, exchange := range exchanges {
		table.Append([]string{
			exchange.At.Format(time.DateTime),
			exchange.Lang,
			exchange.Intent,
			fmt.Sprintf("%.2f", exchange.Probability),
			exchange.Message,
			firstLine(exchange.Response),
		})
	}
	table.Render()
	return nil
}

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return line
}
