package seeds

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"bugtrail/internal/domain/catalog"
	"bugtrail/internal/infrastructure/persistence/models"
	"bugtrail/internal/shared/logger"
)

// SeedFile is the on-disk layout of the yaml seed data. Lookup names are
// upserted by name; companies are only created in development setups.
type SeedFile struct {
	TicketTypes       []string      `yaml:"ticket_types"`
	TicketStatuses    []string      `yaml:"ticket_statuses"`
	TicketPriorities  []string      `yaml:"ticket_priorities"`
	ProjectPriorities []string      `yaml:"project_priorities"`
	Companies         []CompanySeed `yaml:"companies"`
}

// CompanySeed describes a demo company to create when seeding.
type CompanySeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Seeder populates the lookup tables and optional demo companies.
type Seeder struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewSeeder creates a new seeder
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger.NewLogger().With("component", "seeds"),
	}
}

// Run loads the seed file at path and applies it. A missing file is not an
// error; the built-in lookup defaults are applied instead so a fresh
// database always carries the fixed lookup sets.
func (s *Seeder) Run(ctx context.Context, path string) error {
	seed := defaultSeed()

	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			s.logger.Warnw("seed file not found, using built-in defaults", "path", path)
		case err != nil:
			return fmt.Errorf("failed to read seed file %s: %w", path, err)
		default:
			var fromFile SeedFile
			if err := yaml.Unmarshal(content, &fromFile); err != nil {
				return fmt.Errorf("failed to parse seed file %s: %w", path, err)
			}
			seed = merge(seed, fromFile)
			s.logger.Infow("loaded seed file", "path", path)
		}
	}

	return s.apply(ctx, seed)
}

func (s *Seeder) apply(ctx context.Context, seed SeedFile) error {
	db := s.db.WithContext(ctx)

	for _, name := range seed.TicketTypes {
		if err := db.FirstOrCreate(&models.TicketTypeModel{}, models.TicketTypeModel{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to seed ticket type %q: %w", name, err)
		}
	}
	for _, name := range seed.TicketStatuses {
		if err := db.FirstOrCreate(&models.TicketStatusModel{}, models.TicketStatusModel{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to seed ticket status %q: %w", name, err)
		}
	}
	for _, name := range seed.TicketPriorities {
		if err := db.FirstOrCreate(&models.TicketPriorityModel{}, models.TicketPriorityModel{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to seed ticket priority %q: %w", name, err)
		}
	}
	for _, name := range seed.ProjectPriorities {
		if err := db.FirstOrCreate(&models.ProjectPriorityModel{}, models.ProjectPriorityModel{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to seed project priority %q: %w", name, err)
		}
	}

	for _, c := range seed.Companies {
		model := models.CompanyModel{Name: c.Name, Description: c.Description}
		if err := db.FirstOrCreate(&model, models.CompanyModel{Name: c.Name}).Error; err != nil {
			return fmt.Errorf("failed to seed company %q: %w", c.Name, err)
		}
	}

	s.logger.Infow("seeding completed",
		"ticket_types", len(seed.TicketTypes),
		"ticket_statuses", len(seed.TicketStatuses),
		"ticket_priorities", len(seed.TicketPriorities),
		"project_priorities", len(seed.ProjectPriorities),
		"companies", len(seed.Companies))

	return nil
}

func defaultSeed() SeedFile {
	return SeedFile{
		TicketTypes: []string{
			catalog.TypeNewDevelopment,
			catalog.TypeWorkTask,
			catalog.TypeDefect,
			catalog.TypeChangeRequest,
			catalog.TypeEnhancement,
			catalog.TypeGeneralTask,
		},
		TicketStatuses: []string{
			catalog.StatusNew,
			catalog.StatusDevelopment,
			catalog.StatusTesting,
			catalog.StatusResolved,
		},
		TicketPriorities: []string{
			catalog.PriorityLow,
			catalog.PriorityMedium,
			catalog.PriorityHigh,
			catalog.PriorityUrgent,
		},
		ProjectPriorities: []string{
			catalog.PriorityLow,
			catalog.PriorityMedium,
			catalog.PriorityHigh,
			catalog.PriorityUrgent,
		},
	}
}

// merge overlays the file contents on the defaults; list sections in the
// file replace the default lists wholesale when non-empty.
func merge(base, overlay SeedFile) SeedFile {
	if len(overlay.TicketTypes) > 0 {
		base.TicketTypes = overlay.TicketTypes
	}
	if len(overlay.TicketStatuses) > 0 {
		base.TicketStatuses = overlay.TicketStatuses
	}
	if len(overlay.TicketPriorities) > 0 {
		base.TicketPriorities = overlay.TicketPriorities
	}
	if len(overlay.ProjectPriorities) > 0 {
		base.ProjectPriorities = overlay.ProjectPriorities
	}
	base.Companies = overlay.Companies
	return base
}
