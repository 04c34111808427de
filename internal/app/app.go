package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"rendezvous/internal/appointments"
	"rendezvous/internal/archive"
	"rendezvous/internal/catalog"
	"rendezvous/internal/config"
	"rendezvous/internal/documents"
	"rendezvous/internal/generation"
	"rendezvous/internal/layout"
	"rendezvous/internal/lifecycle"
	"rendezvous/internal/logging"
	"rendezvous/internal/notifications"
)

// App bundles the wired collaborators.
type App struct {
	Config       *config.Config
	Logger       *slog.Logger
	Store        *appointments.Store
	Catalog      *catalog.Catalog
	Orchestrator *generation.Orchestrator
	Manager      *lifecycle.Manager
	Renderer     *documents.Renderer
	Archive      *archive.Archive
	Notifier     notifications.Service
}

// Open wires every collaborator from cfg. A nil logger discards output.
func Open(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	store, err := appointments.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open appointment store: %w", err)
	}
	cat, err := catalog.Open(cfg)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	renderer, err := NewRenderer(cfg)
	if err != nil {
		_ = cat.Close()
		_ = store.Close()
		return nil, err
	}
	arc, err := archive.New(cfg.Paths.DocumentsDir, logger)
	if err != nil {
		_ = cat.Close()
		_ = store.Close()
		return nil, err
	}

	notifier := notifications.NewService(cfg)
	org := Organization(cfg.Organization)
	orch := generation.NewOrchestrator(cat, org, logger)
	manager := lifecycle.NewManager(store, orch, lifecycle.Options{
		ImpactDelayMonths: cfg.Impact.DelayMonths,
		ReportBaseURL:     cfg.Impact.ReportBaseURL,
		Notifier:          notifier,
		Logger:            logger,
	})

	return &App{
		Config:       cfg,
		Logger:       logger,
		Store:        store,
		Catalog:      cat,
		Orchestrator: orch,
		Manager:      manager,
		Renderer:     renderer,
		Archive:      arc,
		Notifier:     notifier,
	}, nil
}

// Close releases the databases.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	var errs []error
	if a.Catalog != nil {
		errs = append(errs, a.Catalog.Close())
	}
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	return errors.Join(errs...)
}

// NewRenderer builds the document renderer for cfg's layout section.
func NewRenderer(cfg *config.Config) (*documents.Renderer, error) {
	geometry := layout.Geometry{
		PageWidth:       cfg.Layout.PageWidth,
		PageHeight:      cfg.Layout.PageHeight,
		Margin:          cfg.Layout.Margin,
		LineHeightRatio: cfg.Layout.LineHeightRatio,
	}
	engine, err := layout.NewEngine(geometry, documents.NewPDFMeasurer(), cfg.Layout.WrapCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create layout engine: %w", err)
	}
	return documents.NewRenderer(engine, documents.Options{
		SignatureOffset: cfg.Layout.SignatureOffset,
		AttendanceRows:  cfg.Layout.AttendanceRows,
	}), nil
}

// Organization converts the configured organization into its document form.
func Organization(o config.Organization) documents.Organization {
	return documents.Organization{
		Name:              o.Name,
		Address:           o.Address,
		City:              o.City,
		Siret:             o.Siret,
		DeclarationNumber: o.DeclarationNumber,
		Representative:    o.Representative,
		Email:             o.Email,
	}
}

// RenderAppointment renders every document available for an appointment:
// the agreement bundle plus the stored program and dossier for a standard
// appointment, or the impact report for an evaluated impact appointment.
func (a *App) RenderAppointment(ctx context.Context, id string) ([]documents.Output, error) {
	appt, err := a.Manager.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	org := Organization(a.Config.Organization)

	if appt.Kind == appointments.KindImpact {
		if _, err := a.Manager.GenerateImpactReport(ctx, id); err != nil {
			return nil, err
		}
		return []documents.Output{a.Renderer.ImpactReport(generation.ImpactReportInput(appt, org))}, nil
	}

	outputs := a.Renderer.GenerateAllDocuments(appt.Reference(), generation.Bundle(appt, org))
	if !appt.HasDocuments() {
		return outputs, nil
	}
	program, err := a.Catalog.GetProgram(ctx, appt.ProgramID)
	if err != nil {
		return nil, err
	}
	dossier, err := a.Catalog.GetDossier(ctx, appt.DossierID)
	if err != nil {
		return nil, err
	}
	return append(outputs,
		a.Renderer.Program(program.Input.Data()),
		a.Renderer.Dossier(dossier.Input.Data()),
	), nil
}
