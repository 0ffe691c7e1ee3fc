package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/termsui/suicfg/internal/controller"
	"github.com/termsui/suicfg/internal/engine"
	logger "github.com/termsui/suicfg/internal/logging"
	"github.com/termsui/suicfg/internal/model"
	"github.com/termsui/suicfg/internal/session"
	"github.com/termsui/suicfg/internal/ui"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	debug      bool
	configFile string
	Logger     logger.Logger
)

// registerEditorFlags wires the shared persistent flags onto a top-level
// command and initializes the logger before any of its subcommands run.
func registerEditorFlags(c *cobra.Command) {
	c.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	c.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	c.PersistentFlags().StringVarP(&configFile, "file", "f", "", "path to the configuration file")
	c.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", c.Name(), verbose, debug)
	}
}

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The
// cleanup function automatically calls ui.EnsureNewline() on the final
// message before printing it.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// openDocument loads the configuration file named by --file.
func openDocument() (*controller.Controller, *model.Document, error) {
	if configFile == "" {
		return nil, nil, fmt.Errorf("no configuration file given, use --file")
	}
	Logger.Debugf("Loading configuration from %s", configFile)
	ctl := controller.New()
	doc, err := ctl.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	return ctl, doc, nil
}

// applyAndSave runs one mutation through an edit session and writes the
// result back to the document's tracked path.
func applyAndSave(ctl *controller.Controller, doc *model.Document, cmd engine.Command) (*engine.Change, error) {
	s, err := session.Begin(doc, cmd)
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Opened session %s", s.ID)
	change, err := s.Commit()
	if err != nil {
		return nil, err
	}
	if err := ctl.Save(); err != nil {
		return nil, err
	}
	Logger.Infof("Applied %s and saved %s", change.Op, configFile)
	return change, nil
}

// resolveScope maps the --group flag to an engine scope. Client documents
// always use the empty scope; primary documents default to the active group.
func resolveScope(doc *model.Document, group string) string {
	if doc.Client != nil {
		return ""
	}
	if group != "" {
		return group
	}
	if g := doc.ActiveGroup(); g != nil {
		return g.Name
	}
	return ""
}

// sideEffects describes the activations a mutation carried with it, so the
// operator sees what else the command touched.
func sideEffects(change *engine.Change) string {
	msg := ""
	if change.Demoted != "" {
		msg += color.CyanString("→") + " Deactivated " + ui.Highlight.Sprint(change.Demoted) + "\n"
	}
	if change.Promoted != "" {
		msg += color.CyanString("→") + " Activated " + ui.Highlight.Sprint(change.Promoted) + "\n"
	}
	return msg
}
