package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/kitchenconv/internal/app"
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

// usageExamples is printed when too few conversion tokens are given.
const usageExamples = `usage examples:
  kitchenconv 10 kg to lb
  kitchenconv 400 F in C
  kitchenconv 1 tbs butter to g
  kitchenconv 3 ts of sugar to g
  kitchenconv 3/4 cup to ml
`

// splitAtNegativeQuantity splits args at the first token that looks like a
// negative number. flag parsing would reject "-40" as an unknown flag, but
// the quantity grammar admits negative decimals and the quantity is always
// the first positional token, so everything from it on is positional.
func splitAtNegativeQuantity(args []string) (flagArgs, positional []string) {
	for i, arg := range args {
		if len(arg) >= 2 && arg[0] == '-' && (arg[1] >= '0' && arg[1] <= '9' || arg[1] == '.') {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

// catalogList collects repeated -catalog flags.
type catalogList []string

func (c *catalogList) String() string {
	return strings.Join(*c, ",")
}

func (c *catalogList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("kitchenconv", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
KitchenConv - a cooking measurement converter.

Usage:
  kitchenconv [options] <quantity> <unit> [of] [substance] {to|in} <unit> [of] [substance]

Tokens are case-insensitive; 'of' is optional filler before a substance
name. Quantities may be decimals ("1.5"), scientific ("5e-2"), or
fractions ("3/4"). Options must precede the quantity.

Options:
`)
		flagSet.PrintDefaults()
	}

	var catalogs catalogList
	flagSet.Var(&catalogs, "catalog", "Path to an .hcl catalog overlay file or directory. May be repeated.")
	listFlag := flagSet.Bool("list", false, "List the known units and substances, then exit.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	flagArgs, negativeTail := splitAtNegativeQuantity(args)
	if err := flagSet.Parse(flagArgs); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

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

	paths := []string(catalogs)
	if len(paths) == 0 {
		if env := os.Getenv("KITCHENCONV_CATALOG"); env != "" {
			paths = append(paths, env)
		}
	}

	tokens := append(flagSet.Args(), negativeTail...)
	if !*listFlag && len(tokens) < 4 {
		// Too few tokens to form a conversion; show the examples instead of
		// a parse error. The examples go to standard output, the exit code
		// still signals failure.
		fmt.Fprint(output, usageExamples)
		return nil, false, &ExitError{Code: 1}
	}

	config, err := app.NewConfig(app.Config{
		Catalogs:  paths,
		LogFormat: logFormat,
		LogLevel:  logLevel,
		List:      *listFlag,
		Args:      tokens,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
