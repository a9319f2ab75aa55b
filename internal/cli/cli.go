package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/boardsim/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("boardsim", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
boardsim - Monte Carlo statistics of board tile visits.

Usage:
  boardsim [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Optional .hcl file with a simulation block. Built-in defaults are used
    for anything it does not set; BOARDSIM_* environment variables override
    both.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the simulation .hcl file.")
	cFlag := flagSet.String("c", "", "Path to the simulation .hcl file (shorthand).")
	var envFiles []string
	flagSet.Func("env-file", "Load environment variables from this file. May be repeated.", func(s string) error {
		envFiles = append(envFiles, s)
		return nil
	})
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health and progress server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 1, "Number of games played concurrently.")
	seedFlag := flagSet.Uint64("seed", 0, "Random seed. 0 picks one and logs it.")
	outputFlag := flagSet.String("output", "text", "Report written to stdout. Options: 'text', 'json' or 'none'.")
	publishURLFlag := flagSet.String("publish-url", "", "socket.io endpoint that receives the results, e.g. http://localhost:3000.")
	publishNSFlag := flagSet.String("publish-namespace", "/", "socket.io namespace used with -publish-url.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *configFlag != "" {
		path = *configFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one CONFIG_PATH may be given"}
	}
	slog.Debug("Config path determined.", "path", path)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath:       path,
		EnvFiles:         envFiles,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
		HealthcheckPort:  *healthPortFlag,
		WorkerCount:      *workersFlag,
		Seed:             *seedFlag,
		Output:           strings.ToLower(*outputFlag),
		PublishURL:       *publishURLFlag,
		PublishNamespace: *publishNSFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
