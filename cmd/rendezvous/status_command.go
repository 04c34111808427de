package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rendezvous/internal/appointments"
	"rendezvous/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check readiness and summarise appointments by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			c := requestContext(cmd)

			a, openErr := ctx.openApp()
			var pinger preflight.Pinger
			if openErr == nil {
				defer a.Close()
				pinger = a.Catalog
			}

			fmt.Fprintln(out, renderSectionHeader("Readiness", colorize))
			failed := 0
			for _, r := range preflight.RunAll(c, cfg, pinger) {
				if !r.Passed {
					failed++
				}
				fmt.Fprintln(out, renderCheckLine(r.Name, r.Passed, r.Detail, colorize))
			}
			if openErr != nil {
				return openErr
			}

			list, err := a.Manager.List(c, appointments.ListFilter{})
			if err != nil {
				return err
			}
			counts := make(map[appointments.Status]int)
			for _, appt := range list {
				counts[appt.Status]++
			}
			rows := make([][]string, 0, len(counts))
			for _, status := range appointments.AllStatuses() {
				if n := counts[status]; n > 0 {
					rows = append(rows, []string{string(status), strconv.Itoa(n)})
				}
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderSectionHeader("Appointments", colorize))
			if len(rows) == 0 {
				fmt.Fprintln(out, "  No appointments")
			} else {
				fmt.Fprintln(out, tableSpec{headers: []string{"Status", "Count"}, numeric: []int{1}}.render(rows))
			}

			if failed > 0 {
				return errors.New("readiness checks failed")
			}
			return nil
		},
	}
}
