package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/andyle182810/liquidplanner/liquidplanner"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (a *app) accountCommand() *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "account",
		Short: "Show the logged in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(a.client.Account(cmd.Context()))
		},
	}
}

func (a *app) workspaceCommand() *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "workspace",
		Short: "Show the configured workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(a.client.Workspace(cmd.Context()))
		},
	}
}

func (a *app) tasksCommand() *cobra.Command {
	tasks := &cobra.Command{ //nolint:exhaustruct
		Use:   "tasks",
		Short: "List, show, create and delete tasks",
	}

	var (
		filters []string
		limit   int
	)

	list := &cobra.Command{ //nolint:exhaustruct
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := url.Values{}
			for _, filter := range filters {
				params.Add("filter[]", filter)
			}

			if limit > 0 {
				params.Set("limit", strconv.Itoa(limit))
			}

			return a.print(a.client.ListTasks(cmd.Context(), params))
		},
	}
	list.Flags().StringArrayVar(&filters, "filter", nil, `filter expression such as "is_done is false"`)
	list.Flags().IntVar(&limit, "limit", 0, "maximum number of tasks")

	get := &cobra.Command{ //nolint:exhaustruct
		Use:   "get TASK_ID",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0])
			if err != nil {
				return err
			}

			return a.print(a.client.GetTask(cmd.Context(), taskID))
		},
	}

	var input liquidplanner.TaskInput

	create := &cobra.Command{ //nolint:exhaustruct
		Use:   "create",
		Short: "Create a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(a.client.CreateTask(cmd.Context(), input))
		},
	}
	create.Flags().StringVar(&input.Name, "name", "", "task name")
	create.Flags().StringVar(&input.Description, "description", "", "task description")
	create.Flags().IntVar(&input.ParentID, "parent-id", 0, "parent project or folder")
	create.Flags().IntVar(&input.PackageID, "package-id", 0, "package to schedule the task in")
	create.Flags().IntVar(&input.OwnerID, "owner-id", 0, "owning member")
	create.Flags().StringVar(&input.Promise, "promise-by", "", "promise date, YYYY-MM-DD")

	remove := &cobra.Command{ //nolint:exhaustruct
		Use:   "delete TASK_ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0])
			if err != nil {
				return err
			}

			return a.print(a.client.DeleteTask(cmd.Context(), taskID))
		},
	}

	tasks.AddCommand(list, get, create, remove)

	return tasks
}

func (a *app) trackTimeCommand() *cobra.Command {
	var (
		work, low, high string
		input           liquidplanner.TrackTimeInput
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "track-time TASK_ID",
		Short: "Log hours against a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if input.Work, err = decimal.NewFromString(work); err != nil {
				return fmt.Errorf("invalid --work %q: %w", work, err)
			}

			if input.LowEffortRemaining, err = optionalDecimal("low", low); err != nil {
				return err
			}

			if input.HighEffortRemaining, err = optionalDecimal("high", high); err != nil {
				return err
			}

			return a.print(a.client.TrackTime(cmd.Context(), taskID, input))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&work, "work", "0", "hours worked")
	flags.IntVar(&input.MemberID, "member-id", 0, "member who did the work")
	flags.IntVar(&input.ActivityID, "activity-id", 0, "activity to book the hours on")
	flags.StringVar(&input.WorkPerformedOn, "date", "", "day the work was done, YYYY-MM-DD")
	flags.StringVar(&low, "low", "", "low estimate of remaining hours")
	flags.StringVar(&high, "high", "", "high estimate of remaining hours")
	flags.BoolVar(&input.IsDone, "done", false, "mark the task done")
	flags.StringVar(&input.Note, "comment", "", "comment for the timesheet entry")

	return cmd
}

func (a *app) estimateCommand() *cobra.Command {
	var input liquidplanner.EstimateInput

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "estimate ITEM_ID",
		Short: "Set the remaining effort of a task or package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID(args[0])
			if err != nil {
				return err
			}

			return a.print(a.client.UpdateEstimate(cmd.Context(), itemID, input))
		},
	}

	cmd.Flags().StringVar(&input.Low, "low", "", "low estimate such as 4h")
	cmd.Flags().StringVar(&input.High, "high", "", "high estimate such as 1.5d")

	return cmd
}

func (a *app) membersCommand() *cobra.Command {
	members := &cobra.Command{ //nolint:exhaustruct
		Use:   "members",
		Short: "Workspace members",
	}

	members.AddCommand(&cobra.Command{ //nolint:exhaustruct
		Use:   "list",
		Short: "List workspace members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(a.client.ListMembers(cmd.Context()))
		},
	})

	return members
}

func (a *app) projectsCommand() *cobra.Command {
	projects := &cobra.Command{ //nolint:exhaustruct
		Use:   "projects",
		Short: "Workspace projects",
	}

	projects.AddCommand(&cobra.Command{ //nolint:exhaustruct
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(a.client.ListProjects(cmd.Context()))
		},
	})

	return projects
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", liquidplanner.ErrInvalidID, arg)
	}

	return id, nil
}

func optionalDecimal(flag, value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", flag, value, err)
	}

	return &d, nil
}
