package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	apperrors "todo-list.com/todo-list/internal/errors"
)

const listTimeLayout = "2006-01-02 15:04:05"

var deleteYes bool

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a pending task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := app.tasks.CreateTask(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "added task %d: %s\n", task.ID, task.Title)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List every task by id",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := app.tasks.ListTasks(cmd.Context())
		if err != nil {
			return err
		}

		if len(tasks) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no tasks")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tCREATED\tUPDATED")
		for _, t := range tasks {
			updated := ""
			if t.UpdatedAt != nil {
				updated = displayTime(*t.UpdatedAt)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Status, displayTime(t.CreatedAt), updated)
		}
		return tw.Flush()
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id> <new title>",
	Short: "Change the title of a task",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := app.tasks.UpdateTitle(cmd.Context(), id, strings.Join(args[1:], " ")); err != nil {
			return err
		}

		return reportTask(cmd, id, "updated")
	},
}

var doneCmd = &cobra.Command{
	Use:     "done <id>",
	Aliases: []string{"complete"},
	Short:   "Mark a task as completed",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := app.tasks.CompleteTask(cmd.Context(), id); err != nil {
			return err
		}

		return reportTask(cmd, id, "completed")
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a task permanently",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		task, err := app.tasks.GetTask(ctx, id)
		if errors.Is(err, apperrors.ErrNotFound) {
			// Let the service decide whether a missing id is an error.
			if err := app.tasks.DeleteTask(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "task %d not found, nothing deleted\n", id)
			return nil
		}
		if err != nil {
			return err
		}

		if !deleteYes && !confirm(cmd, fmt.Sprintf("Delete task %d (%s)? [y/N] ", task.ID, task.Title)) {
			fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
			return nil
		}

		if err := app.tasks.DeleteTask(ctx, id); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "deleted task %d\n", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "delete without asking for confirmation")

	rootCmd.AddCommand(addCmd, listCmd, editCmd, doneCmd, deleteCmd)
}

func reportTask(cmd *cobra.Command, id int64, action string) error {
	task, err := app.tasks.GetTask(cmd.Context(), id)
	if errors.Is(err, apperrors.ErrNotFound) {
		fmt.Fprintf(cmd.OutOrStdout(), "task %d not found, nothing %s\n", id, action)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s task %d: %s [%s]\n", action, task.ID, task.Title, task.Status)
	return nil
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, &apperrors.Exception{
			Kind:    apperrors.KindValidation,
			Message: fmt.Sprintf("invalid task id %q", s),
		}
	}
	return id, nil
}

func displayTime(t time.Time) string {
	return t.UTC().Format(listTimeLayout)
}
