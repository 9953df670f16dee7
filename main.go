package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/schollz/termtab/internal/app"
	"github.com/schollz/termtab/internal/model"
	"github.com/schollz/termtab/internal/storage"
	"github.com/schollz/termtab/internal/tab"
)

var (
	Version = "dev"

	// Command-line configuration
	config struct {
		debug   string
		noColor bool

		// new subcommand
		timeSignature string
		measures      int
		stringCount   int
	}
)

var rootCmd = &cobra.Command{
	Use:   "termtab <path>",
	Short: "A modal terminal editor for guitar and bass tablature",
	Long: `termtab edits tablature documents in the terminal with vi-style modes.

Keys:
• i enters Insert mode, Esc returns to Normal mode
• h/j/k/l move the cursor, 0 jumps to the first column
• : opens the command line, :q or :quit exits`,
	Version:      Version,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runEditor,
}

var newCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Create an empty tablature document",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&config.debug, "log", "l", "",
		"Write debug logs to specified file (empty disables)")
	rootCmd.PersistentFlags().BoolVar(&config.noColor, "no-color", false,
		"Disable colors")

	newCmd.Flags().StringVarP(&config.timeSignature, "time", "t", "4/4",
		"Time signature of the initial measures")
	newCmd.Flags().IntVarP(&config.measures, "measures", "m", 1,
		"Number of empty measures to start with")
	newCmd.Flags().IntVar(&config.stringCount, "strings", 6,
		"Number of strings (4 or 5 for bass, 6 or 7 for guitar)")

	rootCmd.AddCommand(newCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging routes the standard logger to the debug file, or discards
// it. The returned func closes the file.
func setupLogging() (func(), error) {
	if config.debug == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(config.debug, "debug")
	if err != nil {
		return nil, err
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Debug logging enabled")
	return func() {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "closing log: %v\n", err)
		}
	}, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	if config.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	path := args[0]
	doc, err := storage.Load(path)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		log.Printf("%s does not exist yet, starting empty", path)
		doc = tab.New()
	case err != nil:
		return err
	}

	// SIGINT and SIGTERM unblock the input read and end the session.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := model.NewModel(path, doc)
	a := app.New(m, app.WithRestore(func() {
		log.Printf("terminal restored")
	}))
	return a.Run(ctx)
}

func runNew(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	ts, err := tab.ParseTimeSignature(config.timeSignature)
	if err != nil {
		return err
	}
	if config.measures < 0 {
		return fmt.Errorf("measures must not be negative, got %d", config.measures)
	}
	inst, err := tab.InstrumentForStrings(config.stringCount)
	if err != nil {
		return err
	}

	path := args[0]
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	doc := tab.NewFor(inst)
	for i := 0; i < config.measures; i++ {
		doc.AppendMeasure(tab.NewMeasure(ts))
	}
	if err := storage.Save(path, doc); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s: %d measures of %s for %s\n", path, config.measures, ts, inst.Name)
	return nil
}
