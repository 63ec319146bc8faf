package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/mcncl/tsgen/internal/config"
	"github.com/mcncl/tsgen/internal/errors"
	"github.com/mcncl/tsgen/internal/generator"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output TypeScript file. If not specified, writes to stdout." short:"o" type:"path"`
	RootName    string `help:"Name for the root interface." short:"r" default:"RootObject"`
	Config      string `help:"Path to a tsgen config file. Discovered automatically when omitted." short:"c" type:"path"`
	Schema      bool   `help:"Treat the input as a JSON Schema document instead of a sample value." short:"s"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Version information
const (
	Version = "0.1.0"
)

var log = logrus.New()

func main() {
	parser := kong.Must(&CLI,
		kong.Name("tsgen"),
		kong.Description("A tool to infer TypeScript interfaces from sample JSON"),
		kong.UsageOnError(),
	)

	// No arguments at all drops into interactive mode
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Usage was already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("tsgen version %s\n", Version)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
	if cfg.Dev.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: tsgen --help\n")
		os.Exit(1)
	}
}

// loadConfig resolves the configuration, merging CLI flags over any
// discovered or explicitly supplied config file.
func loadConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	if path != "" {
		log.WithField("path", path).Debug("loading config file")
	}
	return config.LoadConfigWithCLI(path, CLI.RootName, CLI.Debug)
}

// run executes the main program logic
func run(cfg *config.Config) error {
	jsonText, err := readInput()
	if err != nil {
		return err
	}
	log.WithField("bytes", len(jsonText)).Debug("input read")

	var code string
	if CLI.Schema {
		log.Debug("treating input as JSON Schema")
		code, err = generator.GenerateSchema(jsonText, cfg)
	} else {
		code, err = generator.GenerateWithConfig(jsonText, cfg)
	}
	if err != nil {
		return err
	}

	return writeOutput(code)
}

// readInput reads JSON text from file or stdin
func readInput() (string, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.NewInputError(
					fmt.Sprintf("file '%s' not found", CLI.Input),
					errors.ErrFileNotFound,
				)
			}
			return "", errors.NewInputError(fmt.Sprintf("failed to read file '%s'", CLI.Input), err)
		}
		if len(data) == 0 {
			return "", errors.NewInputError(
				fmt.Sprintf("input file '%s' is empty", CLI.Input),
				errors.ErrFileEmpty,
			)
		}
		log.WithField("path", CLI.Input).Debug("reading input file")
		return string(data), nil
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Piped input
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return string(jsonData), nil
}

// writeOutput writes the declarations to file or stdout
func writeOutput(code string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(code+"\n"), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Generated TypeScript interfaces written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(strings.TrimSpace(code))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (string, error) {
	fmt.Fprintln(os.Stderr, "tsgen Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return jsonData, nil
}
