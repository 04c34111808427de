package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rendezvous/internal/app"
	"rendezvous/internal/appointments"
	"rendezvous/internal/lifecycle"
)

func newAppointmentCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointment",
		Aliases: []string{"rdv"},
		Short:   "Manage positioning appointments",
	}
	cmd.AddCommand(newAppointmentCreateCommand(ctx))
	cmd.AddCommand(newAppointmentListCommand(ctx))
	cmd.AddCommand(newAppointmentShowCommand(ctx))
	cmd.AddCommand(newAppointmentCorrectCommand(ctx))
	cmd.AddCommand(newAppointmentValidateCommand(ctx))
	cmd.AddCommand(newAppointmentCancelCommand(ctx))
	cmd.AddCommand(newAppointmentRescheduleCommand(ctx))
	cmd.AddCommand(newAppointmentSynthesisCommand(ctx))
	cmd.AddCommand(newAppointmentGenerateCommand(ctx))
	return cmd
}

type participantFlags struct {
	firstName    string
	lastName     string
	email        string
	phone        string
	situation    string
	objectives   string
	currentLevel string
}

func (p *participantFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.firstName, "first-name", "", "Participant first name")
	cmd.Flags().StringVar(&p.lastName, "last-name", "", "Participant last name")
	cmd.Flags().StringVar(&p.email, "email", "", "Participant email")
	cmd.Flags().StringVar(&p.phone, "phone", "", "Participant phone")
	cmd.Flags().StringVar(&p.situation, "situation", "", "Current situation")
	cmd.Flags().StringVar(&p.objectives, "objectives", "", "Stated objectives")
	cmd.Flags().StringVar(&p.currentLevel, "level", "", "Current practice level")
}

func (p *participantFlags) participant() appointments.Participant {
	return appointments.Participant{
		FirstName:    p.firstName,
		LastName:     p.lastName,
		Email:        p.email,
		Phone:        p.phone,
		Situation:    p.situation,
		Objectives:   p.objectives,
		CurrentLevel: p.currentLevel,
	}
}

// transitionOutput prints the resulting appointment as text or JSON.
func transitionOutput(cmd *cobra.Command, asJSON bool, appt *appointments.Appointment) error {
	if asJSON {
		return writeJSON(cmd, newAppointmentView(appt))
	}
	printAppointment(cmd.OutOrStdout(), appt)
	return nil
}

func newAppointmentCreateCommand(ctx *commandContext) *cobra.Command {
	var p participantFlags
	var at, channel string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduled, err := parseDateTime("scheduled_at", at)
			if err != nil {
				return err
			}
			return ctx.withApp(cmd, func(c context.Context, a *app.App) error {
				appt, err := a.Manager.Create(c, lifecycle.CreateInput{
					Participant: p.participant(),
					ScheduledAt: scheduled,
					Channel:     channel,
				})
				if err != nil {
					return err
				}
				return transitionOutput(cmd, asJSON, appt)
			})
		},
	}
	p.register(cmd)
	cmd.Flags().StringVar(&at, "at", "", "Appointment date (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&channel, "channel", "", "visio, telephone or presentiel")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newAppointmentListCommand(ctx *commandContext) *cobra.Command {
	var statuses []string
	var kind, parent string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := appointments.ListFilter{ParentID: parent, Kind: appointments.Kind(kind)}
			for _, value := range statuses {
				status, ok := appointments.ParseStatus(value)
				if !ok {
					return &appointments.ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", value)}
				}
				filter.Statuses = append(filter.Statuses, status)
			}
			return ctx.withApp(cmd, func(c context.Context, a *app.App) error {
				list, err := a.Manager.List(c, filter)
				if err != nil {
					return err
				}
				if asJSON {
					views := make([]appointmentView, len(list))
					for i, appt := range list {
						views[i] = newAppointmentView(appt)
					}
					return writeJSON(cmd, views)
				}
				if len(list) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No appointments")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderAppointmentList(list))
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "Filter by status (repeatable)")
	cmd.Flags().StringVar(&kind, "kind", "", "Filter by kind (standard or impact)")
	cmd.Flags().StringVar(&parent, "parent", "", "Filter impact appointments by source appointment id")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newAppointmentShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(c context.Context, a *app.App) error {
				appt, err := a.Manager.Get(c, args[0])
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

func newAppointmentCorrectCommand(ctx *commandContext) *cobra.Command {
	var p participantFlags
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "correct <id>",
		Short: "Correct the participant snapshot; unset flags keep stored values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(c context.Context, a *app.App) error {
				current, err := a.Manager.Get(c, args[0])
				if err != nil {
					return err
				}
				next := current.Participant
				flags := cmd.Flags()
				for name, dst := range map[string]*string{
					"first-name": &next.FirstName,
					"last-name":  &next.LastName,
					"email":      &next.Email,
					"phone":      &next.Phone,
					"situation":  &next.Situation,
					"objectives": &next.Objectives,
					"level":      &next.CurrentLevel,
				} {
					if flags.Changed(name) {
						*dst, _ = flags.GetString(name)
					}
				}
				appt, err := a.Manager.CorrectParticipant(c, args[0], next)
				if err != nil {
					return err
				}
				return transitionOutput(cmd, asJSON, appt)
			})
		},
	}
	p.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newAppointmentValidateCommand(ctx *commandContext) *cobra.Command {
	var at, channel string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "validate <id>",
		Short: "Confirm an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduled, err := parseDateTime("scheduled_at", at)
			if err != nil {
				return err
			}
			return ctx.withApp(cmd, func(c context.Context, a *app.App) error {
				appt, err := a.Manager.Validate(c, args[0], lifecycle.ValidateInput{Channel: channel, ScheduledAt: scheduled})
				if err != nil {
					return err
				}
				return transitionOutput(cmd, asJSON, appt)
			})
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Appointment date")
	cmd.Flags().StringVar(&channel, "channel", "", "visio, telephone or presentiel")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newAppointmentCancelCommand(ctx *commandContext) *cobra.Command {
	var reason string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a new or scheduled appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(c context.Context, a *app.App) error {
				appt, err := a.Manager.Cancel(c, args[0], lifecycle.CancelInput{Reason: reason})
				if err != nil {
					return err
				}
				return transitionOutput(cmd, asJSON, appt)
			})
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Cancellation reason, kept as a comment")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newAppointmentRescheduleCommand(ctx *commandContext) *cobra.Command {
	var at, channel string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "reschedule <id>",
		Short: "Move a scheduled appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheduled, err := parseDateTime("scheduled_at", at)
			if err != nil {
				return err
			}
			in := lifecycle.RescheduleInput{Channel: channel}
			if scheduled != nil {
				in.ScheduledAt = *scheduled
			}
			return ctx.withApp(cmd, func(c context.Context, a *app.App) error {
				appt, err := a.Manager.Reschedule(c, args[0], in)
				if err != nil {
					return err
				}
				return transitionOutput(cmd, asJSON, appt)
			})
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "New appointment date (required)")
	cmd.Flags().StringVar(&channel, "channel", "", "visio, telephone or presentiel")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newAppointmentSynthesisCommand(ctx *commandContext) *cobra.Command {
	var synthesis, notes string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "synthesis <id>",
		Short: "Record the compte-rendu of a held appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(c context.Context, a *app.App) error {
				appt, err := a.Manager.RecordSynthesis(c, args[0], lifecycle.SynthesisInput{Synthesis: synthesis, Notes: notes})
				if err != nil {
					return err
				}
				return transitionOutput(cmd, asJSON, appt)
			})
		},
	}
	cmd.Flags().StringVar(&synthesis, "text", "", "Synthesis (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Private notes, never printed on documents")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newAppointmentGenerateCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "generate <id>",
		Short: "Generate the training program and dossier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(c context.Context, a *app.App) error {
				appt, err := a.Manager.GenerateProgramAndDossier(c, args[0])
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
