package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	clubhouse "github.com/clubhouse/client-go"
)

func newMilestonesCmd(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestones",
		Short: "Manage milestones",
	}

	cmd.AddCommand(
		newMilestonesListCmd(log),
		newMilestonesGetCmd(log),
		newMilestonesCreateCmd(log),
		newMilestonesDeleteCmd(log),
	)

	return cmd
}

func newMilestonesListCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := setup(log)
			if err != nil {
				return err
			}

			milestones, err := client.ListMilestones(cmd.Context())
			if err != nil {
				return err
			}

			if cfg.Output.Format == "json" {
				return printJSON(milestones)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTATE")
			for _, m := range milestones {
				fmt.Fprintf(w, "%d\t%s\t%s\n", m.ID, m.Name, coloredState(m.State))
			}

			return w.Flush()
		},
	}
}

func newMilestonesGetCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid milestone ID %q: %w", args[0], err)
			}

			cfg, client, err := setup(log)
			if err != nil {
				return err
			}

			milestone, err := client.GetMilestone(cmd.Context(), id)
			if err != nil {
				return err
			}

			if cfg.Output.Format == "json" {
				return printJSON(milestone)
			}

			fmt.Printf("ID:          %d\n", milestone.ID)
			fmt.Printf("Name:        %s\n", milestone.Name)
			fmt.Printf("State:       %s\n", coloredState(milestone.State))
			if milestone.Description != "" {
				fmt.Printf("Description: %s\n", milestone.Description)
			}
			for _, cat := range milestone.Categories {
				fmt.Printf("Category:    %s\n", cat.Name)
			}

			return nil
		},
	}
}

func newMilestonesCreateCmd(log *logrus.Logger) *cobra.Command {
	var name, description, state string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a milestone",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := setup(log)
			if err != nil {
				return err
			}

			milestone, err := client.CreateMilestone(cmd.Context(), &clubhouse.CreateMilestoneParams{
				Name:        name,
				Description: description,
				State:       state,
			})
			if err != nil {
				return err
			}

			if cfg.Output.Format == "json" {
				return printJSON(milestone)
			}

			fmt.Printf("Created milestone %d: %s\n", milestone.ID, milestone.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Milestone name (required)")
	cmd.Flags().StringVar(&description, "description", "", "Milestone description")
	cmd.Flags().StringVar(&state, "state", "", "Initial state (to do, in progress, done)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newMilestonesDeleteCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid milestone ID %q: %w", args[0], err)
			}

			_, client, err := setup(log)
			if err != nil {
				return err
			}

			if err := client.DeleteMilestone(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Printf("Deleted milestone %d\n", id)

			return nil
		},
	}
}

// setup loads the configuration and builds an API client from it.
func setup(log *logrus.Logger) (*Config, *clubhouse.Client, error) {
	cfg, err := Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	client, err := newClient(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	return cfg, client, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))

	return nil
}

// coloredState renders a workflow state with a state-specific color.
func coloredState(state string) string {
	switch state {
	case clubhouse.StateDone:
		return color.HiGreenString(state)
	case clubhouse.StateInProgress:
		return color.HiYellowString(state)
	default:
		return color.HiBlueString(state)
	}
}
