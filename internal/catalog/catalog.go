package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rendezvous/internal/config"
	"rendezvous/internal/documents"
	"rendezvous/internal/services"
)

// ErrNotFound is returned when a program or dossier id is unknown.
var ErrNotFound = fmt.Errorf("catalog entry %w", services.ErrNotFound)

// Catalog stores programs and dossiers.
type Catalog struct {
	db *gorm.DB
}

// Open connects to the configured catalog database and migrates its tables.
func Open(cfg *config.Config) (*Catalog, error) {
	var dialector gorm.Dialector
	switch cfg.Catalog.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Catalog.DSN)
	case "sqlite", "":
		if dir := filepath.Dir(cfg.Catalog.DSN); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create catalog directory: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.Catalog.DSN)
	default:
		return nil, services.Wrap(services.ErrConfiguration, "catalog", "open",
			fmt.Sprintf("unsupported driver %q", cfg.Catalog.Driver), nil)
	}
	return OpenDialector(dialector)
}

// OpenDialector connects through an explicit gorm dialector.
func OpenDialector(dialector gorm.Dialector) (*Catalog, error) {
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if err := db.AutoMigrate(&TrainingProgram{}, &Dossier{}); err != nil {
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Close releases the underlying connection pool.
func (c *Catalog) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateProgram stores a program for appointmentID and returns its id.
func (c *Catalog) CreateProgram(ctx context.Context, appointmentID string, in documents.ProgramInput) (string, error) {
	program := TrainingProgram{
		ID:            uuid.NewString(),
		AppointmentID: appointmentID,
		Reference:     in.Reference,
		Title:         in.Title,
		RenderTarget:  documents.KindProgram.Filename(in.Reference),
		Input:         datatypes.NewJSONType(in),
	}
	if err := c.db.WithContext(ctx).Create(&program).Error; err != nil {
		return "", fmt.Errorf("create program: %w", err)
	}
	return program.ID, nil
}

// CreateDossier stores a dossier for appointmentID and returns its id.
func (c *Catalog) CreateDossier(ctx context.Context, appointmentID string, in documents.DossierInput) (string, error) {
	dossier := Dossier{
		ID:            uuid.NewString(),
		AppointmentID: appointmentID,
		Reference:     in.Reference,
		Title:         in.Title,
		RenderTarget:  documents.KindDossier.Filename(in.Reference),
		Input:         datatypes.NewJSONType(in),
	}
	if err := c.db.WithContext(ctx).Create(&dossier).Error; err != nil {
		return "", fmt.Errorf("create dossier: %w", err)
	}
	return dossier.ID, nil
}

// DeleteProgram removes a program. Deleting a missing id is not an error.
func (c *Catalog) DeleteProgram(ctx context.Context, id string) error {
	if err := c.db.WithContext(ctx).Delete(&TrainingProgram{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete program %s: %w", id, err)
	}
	return nil
}

// DeleteDossier removes a dossier. Deleting a missing id is not an error.
func (c *Catalog) DeleteDossier(ctx context.Context, id string) error {
	if err := c.db.WithContext(ctx).Delete(&Dossier{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete dossier %s: %w", id, err)
	}
	return nil
}

// GetProgram fetches a program by id.
func (c *Catalog) GetProgram(ctx context.Context, id string) (*TrainingProgram, error) {
	var program TrainingProgram
	err := c.db.WithContext(ctx).First(&program, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: program %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get program %s: %w", id, err)
	}
	return &program, nil
}

// GetDossier fetches a dossier by id.
func (c *Catalog) GetDossier(ctx context.Context, id string) (*Dossier, error) {
	var dossier Dossier
	err := c.db.WithContext(ctx).First(&dossier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: dossier %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get dossier %s: %w", id, err)
	}
	return &dossier, nil
}

// Counts reports how many programs and dossiers reference appointmentID.
func (c *Catalog) Counts(ctx context.Context, appointmentID string) (programs, dossiers int64, err error) {
	db := c.db.WithContext(ctx)
	if err = db.Model(&TrainingProgram{}).Where("appointment_id = ?", appointmentID).Count(&programs).Error; err != nil {
		return 0, 0, fmt.Errorf("count programs: %w", err)
	}
	if err = db.Model(&Dossier{}).Where("appointment_id = ?", appointmentID).Count(&dossiers).Error; err != nil {
		return 0, 0, fmt.Errorf("count dossiers: %w", err)
	}
	return programs, dossiers, nil
}

// Ping verifies the catalog database answers.
func (c *Catalog) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
