package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	apperrors "todo-list.com/todo-list/internal/errors"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "todo",
	Short:         "Single-user to-do list backed by a local SQLite file",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetPrefix("[todo] ")
		if verbose {
			log.SetOutput(cmd.ErrOrStderr())
		} else {
			log.SetOutput(io.Discard)
		}

		if !needsStore(cmd) {
			return nil
		}
		return openApp(cmd.Context())
	},
}

// needsStore reports whether cmd works on tasks. Cobra's built-in help and
// shell completion commands must not create a database file.
func needsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log store activity to stderr")
}

func Execute() {
	err := rootCmd.Execute()
	closeApp()

	if err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(apperrors.ExitCode(err))
	}
}

// describe renders an error as "<kind>: <message>" for the user.
func describe(err error) string {
	if kind := apperrors.KindOf(err); kind != "" {
		return fmt.Sprintf("%s error: %v", kind, err)
	}
	return fmt.Sprintf("error: %v", err)
}
