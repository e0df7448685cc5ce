package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/atomicstack/multiselect/internal/app"
	"github.com/atomicstack/multiselect/internal/config"
	"github.com/atomicstack/multiselect/internal/config/settings"
	"github.com/atomicstack/multiselect/internal/logging"
	"github.com/atomicstack/multiselect/internal/logging/events"
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func main() {
	cmd := newRootCmd(os.Environ())
	if err := cmd.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

// parsedArgs rebuilds the command line cobra parsed: the flags that were
// set, in name order, followed by the positional arguments.
func parsedArgs(fs *pflag.FlagSet, positional []string) []string {
	var out []string
	fs.Visit(func(f *pflag.Flag) {
		out = append(out, "--"+f.Name+"="+f.Value.String())
	})
	return append(out, positional...)
}

func newRootCmd(environ []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "multiselect",
		Short:         "Pick values from a list in a dropdown with checkboxes",
		Long:          "multiselect shows the options of a YAML file in a checkbox dropdown and prints the confirmed selection.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	values := config.Bind(cmd.Flags(), environ)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		runtimeCfg, err := values.Config(parsedArgs(cmd.Flags(), args))
		if err == nil {
			err = config.Validate(runtimeCfg)
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Configuration error: %v\n", err)
			return &exitError{code: 2, err: err}
		}
		logging.Configure(runtimeCfg.Logging.FilePath)
		logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

		traceStartup(runtimeCfg)

		if err := app.RunWithOutput(runtimeCfg.App, cmd.OutOrStdout()); err != nil {
			if errors.Is(err, app.ErrAborted) {
				return &exitError{code: 1, err: err}
			}
			logging.Error(err)
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return &exitError{code: 1, err: err}
		}
		return nil
	}
	cmd.AddCommand(newSchemaCmd())
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeSchema(cmd.OutOrStdout())
		},
	}
}

func writeSchema(w io.Writer) error {
	data, err := settings.Schema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and
// dimensions. The picker draws on stderr, so it is probed first.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stderr", os.Stderr.Fd()},
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
