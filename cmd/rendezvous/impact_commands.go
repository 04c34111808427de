package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rendezvous/internal/app"
	"rendezvous/internal/lifecycle"
)

func newImpactCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "impact",
		Short: "Post-training impact follow-up",
	}
	cmd.AddCommand(newImpactPlanCommand(ctx))
	cmd.AddCommand(newImpactEvaluateCommand(ctx))
	cmd.AddCommand(newImpactCloseCommand(ctx))
	cmd.AddCommand(newImpactReportCommand(ctx))
	return cmd
}

func newImpactPlanCommand(ctx *commandContext) *cobra.Command {
	var date string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "plan <appointment-id>",
		Short: "Create the impact appointment for a generated program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			impactDate, err := parseDateTime("impact_date", date)
			if err != nil {
				return err
			}
			return ctx.withApp(cmd, func(c context.Context, a *app.App) error {
				impact, err := a.Manager.PlanImpact(c, args[0], lifecycle.PlanImpactInput{ImpactDate: impactDate})
				if err != nil {
					return err
				}
				return transitionOutput(cmd, asJSON, impact)
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Impact date (default: configured delay from now)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newImpactEvaluateCommand(ctx *commandContext) *cobra.Command {
	var in lifecycle.ImpactEvaluationInput
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "evaluate <impact-id>",
		Short: "Record the impact evaluation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(c context.Context, a *app.App) error {
				appt, err := a.Manager.RecordImpactEvaluation(c, args[0], in)
				if err != nil {
					return err
				}
				return transitionOutput(cmd, asJSON, appt)
			})
		},
	}
	cmd.Flags().IntVar(&in.Satisfaction, "satisfaction", 0, "Satisfaction score from 1 to 5 (required)")
	cmd.Flags().StringVar(&in.CompetencesAppliquees, "competences", "", "Competencies applied since the training")
	cmd.Flags().StringVar(&in.Ameliorations, "ameliorations", "", "Suggested improvements")
	cmd.Flags().StringVar(&in.Commentaires, "comments", "", "Impact comments")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newImpactCloseCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "close <impact-id>",
		Short: "Close an evaluated impact appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(c context.Context, a *app.App) error {
				appt, err := a.Manager.CloseImpact(c, args[0])
				if err != nil {
					return err
				}
				return transitionOutput(cmd, asJSON, appt)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newImpactReportCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "report <impact-id>",
		Short: "Print the impact report locator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(c context.Context, a *app.App) error {
				report, err := a.Manager.GenerateImpactReport(c, args[0])
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, map[string]string{"rapportUrl": report.RapportURL})
				}
				fmt.Fprintln(cmd.OutOrStdout(), report.RapportURL)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
