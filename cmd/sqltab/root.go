package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vippsas/sqltab/internal/command"
	"github.com/vippsas/sqltab/internal/config"
	"github.com/vippsas/sqltab/internal/interp"
	"github.com/vippsas/sqltab/internal/sqltaberr"
	"github.com/vippsas/sqltab/internal/tableio"
)

const op = "cmd.sqltab"

var (
	delimiter   string
	verbose     bool
	profilePath string

	rootCmd = &cobra.Command{
		Use:          "sqltab COMMAND_SPEC INPUT_FILE",
		Short:        "batch spreadsheet processor",
		Long:         "sqltab reads a delimited text table, runs a sequence of selection and mutation commands against it, and writes the result back to the same file.",
		SilenceUsage: true,
		Args:         exactlyTwoPositionals,
		RunE:         run,
	}
)

// Execute registers flags and runs the root command.
func Execute() error {
	rootCmd.Flags().StringVarP(&delimiter, "d", "d", " ", "delimiter alphabet; the first byte is canonical, the rest are normalized to it")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace each executed command")
	rootCmd.Flags().StringVar(&profilePath, "profile", "", "optional YAML file of named command presets; when set, COMMAND_SPEC is looked up by name")
	return rootCmd.Execute()
}

// exactlyTwoPositionals requires COMMAND_SPEC and INPUT_FILE; cobra has
// already stripped flags by the time this runs, so position no longer
// shifts depending on whether -d was given the way it does in a raw
// argv scan.
func exactlyTwoPositionals(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return sqltaberr.New(sqltaberr.ExitMissingArgs, op, "expected COMMAND_SPEC and INPUT_FILE")
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	commandSpecOrName, inputFile := args[0], args[1]

	delims := []byte(delimiter)
	if len(delims) == 0 {
		delims = []byte(" ")
	}
	if err := validateDelimiters(delims); err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	commandSpec := commandSpecOrName
	if profilePath != "" {
		profiles, err := config.Load(profilePath)
		if err != nil {
			return err
		}
		resolved, ok := profiles.Find(commandSpecOrName)
		if !ok {
			return sqltaberr.New(sqltaberr.ExitBadArgument, op, "no such profile: "+commandSpecOrName)
		}
		commandSpec = resolved
	}

	cmds, err := command.Commands(commandSpec)
	if err != nil {
		return err
	}

	t, err := tableio.Load(inputFile, delims)
	if err != nil {
		return err
	}

	ip := interp.New(t, logger, logger)
	if err := ip.Run(cmds); err != nil {
		return err
	}

	return tableio.Save(inputFile, t)
}

// validateDelimiters rejects a delimiter alphabet containing a quote or
// backslash byte, since those are reserved for the quoting grammar.
func validateDelimiters(delims []byte) error {
	for _, b := range delims {
		if b == '"' || b == '\'' || b == '\\' {
			return sqltaberr.New(sqltaberr.ExitForbiddenDelimiter, op, `delimiter alphabet may not contain '"', ''' or '\'`)
		}
	}
	return nil
}
