package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"rendezvous/internal/app"
)

func newDocumentsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "documents",
		Short: "Render appointment documents",
	}
	cmd.AddCommand(newDocumentsRenderCommand(ctx))
	return cmd
}

func newDocumentsRenderCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "render <id>",
		Short: "Render every available document into the documents directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(c context.Context, a *app.App) error {
				outputs, err := a.RenderAppointment(c, args[0])
				if err != nil {
					return err
				}
				paths, err := a.Archive.WriteAll(c, outputs)
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(outputs))
				for i, out := range outputs {
					note := ""
					if out.Truncated {
						note = "rows truncated"
					}
					rows = append(rows, []string{
						string(out.Kind),
						filepath.Base(paths[i]),
						strconv.Itoa(len(out.Document.Pages)),
						note,
					})
				}
				spec := tableSpec{
					title:   a.Archive.Dir(),
					headers: []string{"Document", "File", "Pages", "Note"},
					numeric: []int{2},
				}
				fmt.Fprintln(cmd.OutOrStdout(), spec.render(rows))
				return nil
			})
		},
	}
}
