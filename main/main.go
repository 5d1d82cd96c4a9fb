package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sgostarter/i/l"

	"github.com/phil-mansfield/lininterp/interpolate"
	"github.com/phil-mansfield/lininterp/io"
)

func main() {
	var (
		interp        string
		exampleConfig string
	)
	vars := map[string]*string{
		"Interp":        &interp,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&interp, "Interp", "",
		"Configuration file for [Interp] mode. Any further arguments are "+
			"evaluated as queries.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Interp'.",
	)

	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	modeName, err := getModeName(vars)
	if err != nil {
		fatal(logger, err)
	}

	switch modeName {
	case "Interp":
		con, err := io.ReadInterpConfig(interp)
		if err != nil {
			fatal(logger, err)
		}
		if err := interpMain(con, flag.Args(), logger); err != nil {
			fatal(logger, err)
		}
	case "ExampleConfig":
		switch exampleConfig {
		case "Interp":
			fmt.Println(io.ExampleInterpFile)
		default:
			fatal(logger, fmt.Errorf(
				"Unrecognized 'ExampleConfig' argument. The only recognized "+
					"argument is 'Interp'.",
			))
		}
	default:
		panic("Impossible")
	}
}

// exit is replaced in tests.
var exit = os.Exit

// fatal reports err through the logger's Fatal. Wrappers whose Fatal returns
// (the nop wrapper does) still end the process.
func fatal(logger l.Wrapper, err error) {
	logger.WithFields(l.ErrorField(err)).Fatal("lininterp failed")
	exit(1)
}

func interpMain(con *io.InterpConfig, args []string, logger l.Wrapper) error {
	tab, err := io.ReadTable(con)
	if err != nil {
		return err
	}

	opts, err := con.Options()
	if err != nil {
		return err
	}
	if con.Verbose {
		opts = append(opts, interpolate.WithLogger(logger))
	}
	lin := interpolate.NewLinear(tab, opts...)

	if err := tab.Validate(); err != nil {
		return fmt.Errorf("Table '%s' cannot be interpolated: %w", con.TableFile, err)
	}

	xs, err := io.ParseQueries(con.Queries)
	if err != nil {
		return err
	}
	argXs, err := io.ParseQueryArgs(args)
	if err != nil {
		return err
	}
	xs = append(xs, argXs...)

	if con.Verbose {
		logger.WithFields(
			l.StringField("table", con.TableFile),
			l.IntField("active", tab.Active()),
			l.IntField("queries", len(xs)),
		).Info("interpolating")
	}

	for i, res := range lin.InterpAll(xs) {
		fmt.Printf("%g %g %s %d\n", xs[i], res.Value, res.Status, res.Section)
	}

	if con.ValidPlotFile() {
		plotCurve(lin, con.PlotFile, con.PlotPoints)
	}
	return nil
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but lininterp "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}
