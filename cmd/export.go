package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write the task list to a report file",
	Long: "Writes the current task list to <path>. The format follows the file\n" +
		"extension (.txt, .csv, .json or .pdf); paths without one get .txt.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := app.tasks.ListTasks(cmd.Context())
		if err != nil {
			return err
		}

		path, err := app.exporter.WriteFile(args[0], tasks)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "exported %d tasks to %s\n", len(tasks), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
