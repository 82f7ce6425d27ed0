// Command preview renders a UI description in the terminal.
//
// It stands in for a plugin host during UI iteration: it builds the editor
// shell around a stub processor, drives Resized from terminal size changes,
// and repaints the widget tree on every frame.
//
//	preview -ui my_plugin_ui.xml -dir ./resources
//
// Flags can also come from a .env file (UILOADER_UI, UILOADER_DIR,
// UILOADER_VERBOSE).
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/bogrendigital/ui-loader/assets"
	"github.com/bogrendigital/ui-loader/editor"
	"github.com/bogrendigital/ui-loader/loader"
	"github.com/bogrendigital/ui-loader/uidesc"
)

func main() {
	// .env is optional; flags win over it.
	_ = godotenv.Load()

	var (
		uiName  = flag.String("ui", envOr("UILOADER_UI", "my_plugin_ui.xml"), "Description name to load")
		dir     = flag.String("dir", envOr("UILOADER_DIR", "."), "Directory holding descriptions and images")
		verbose = flag.Bool("v", os.Getenv("UILOADER_VERBOSE") != "", "Verbose logging to stderr")
	)
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "preview needs a terminal")
		os.Exit(1)
	}

	if err := run(*uiName, *dir, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(uiName, dir string, verbose bool) error {
	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck
		assets.SetLogger(log.Named("assets"))
		uidesc.SetLogger(log.Named("uidesc"))
		loader.SetLogger(log.Named("loader"))
		editor.SetLogger(log.Named("editor"))
	}

	images, err := assets.NewFSProvider(os.DirFS(dir), ".")
	if err != nil {
		return fmt.Errorf("index resources: %w", err)
	}

	ed, err := editor.New(stubProcessor{},
		editor.WithAssets(images),
		editor.WithDescriptionSource(loader.NewFSSource(os.DirFS(dir), ".")),
		editor.WithDescriptionName(uiName),
	)
	if err != nil {
		// Keep going: the model shows the load error alongside the blank UI.
		fmt.Fprintf(os.Stderr, "load warning: %v\n", err)
	}
	defer ed.Close() //nolint:errcheck

	p := tea.NewProgram(newModel(ed, uiName), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// stubProcessor stands in for the externally-owned audio processor.
type stubProcessor struct{}

func (stubProcessor) Name() string { return "preview" }
