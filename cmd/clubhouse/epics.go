package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	clubhouse "github.com/clubhouse/client-go"
)

func newEpicsCmd(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epics",
		Short: "Manage epics",
	}

	cmd.AddCommand(
		newEpicsListCmd(log),
		newEpicsGetCmd(log),
		newEpicsSearchCmd(log),
	)

	return cmd
}

func newEpicsListCmd(log *logrus.Logger) *cobra.Command {
	var milestoneID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List epics, optionally scoped to a milestone",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := setup(log)
			if err != nil {
				return err
			}

			var epics []clubhouse.Epic
			if milestoneID > 0 {
				epics, err = client.ListMilestoneEpics(cmd.Context(), milestoneID)
			} else {
				epics, err = client.ListEpics(cmd.Context())
			}
			if err != nil {
				return err
			}

			if cfg.Output.Format == "json" {
				return printJSON(epics)
			}

			printEpicTable(epics)

			return nil
		},
	}

	cmd.Flags().Int64Var(&milestoneID, "milestone", 0, "Only list epics in this milestone")

	return cmd
}

func newEpicsGetCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single epic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid epic ID %q: %w", args[0], err)
			}

			cfg, client, err := setup(log)
			if err != nil {
				return err
			}

			epic, err := client.GetEpic(cmd.Context(), id)
			if err != nil {
				return err
			}

			if cfg.Output.Format == "json" {
				return printJSON(epic)
			}

			fmt.Printf("ID:        %d\n", epic.ID)
			fmt.Printf("Name:      %s\n", epic.Name)
			fmt.Printf("State:     %s\n", coloredState(epic.State))
			if epic.MilestoneID != nil {
				fmt.Printf("Milestone: %d\n", *epic.MilestoneID)
			}
			if epic.Deadline != nil {
				fmt.Printf("Deadline:  %s\n", epic.Deadline.Format("2006-01-02"))
			}
			if epic.Stats != nil {
				fmt.Printf("Stories:   %d done, %d started, %d unstarted\n",
					epic.Stats.NumStoriesDone, epic.Stats.NumStoriesStarted, epic.Stats.NumStoriesUnstarted)
			}

			return nil
		},
	}
}

func newEpicsSearchCmd(log *logrus.Logger) *cobra.Command {
	var pageSize int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search epics with the Clubhouse query syntax",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := setup(log)
			if err != nil {
				return err
			}

			epics, err := client.SearchEpics(cmd.Context(), &clubhouse.SearchEpicsParams{
				Query:    args[0],
				PageSize: pageSize,
			})
			if err != nil {
				return err
			}

			if cfg.Output.Format == "json" {
				return printJSON(epics)
			}

			printEpicTable(epics)

			return nil
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Results per page (server default when 0)")

	return cmd
}

func printEpicTable(epics []clubhouse.Epic) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATE")
	for _, e := range epics {
		fmt.Fprintf(w, "%d\t%s\t%s\n", e.ID, e.Name, coloredState(e.State))
	}
	w.Flush()
}
