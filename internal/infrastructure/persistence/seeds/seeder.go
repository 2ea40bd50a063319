// Package seeds loads initial data from a YAML file into the database.
// Used by the seed CLI command to bootstrap a fresh install.
package seeds

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/showcase"
	"github.com/giftex-inc/giftex/internal/domain/user"
	"github.com/giftex-inc/giftex/internal/shared/authorization"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type SeedFile struct {
	Users            []UserSeed            `yaml:"users"`
	MachineModels    []MachineModelSeed    `yaml:"machine_models"`
	Symptoms         []SymptomSeed         `yaml:"symptoms"`
	Parts            []PartSeed            `yaml:"parts"`
	ShowcaseMachines []ShowcaseMachineSeed `yaml:"showcase_machines"`
}

type UserSeed struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Company  string `yaml:"company"`
	Phone    string `yaml:"phone"`
}

type MachineModelSeed struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

type SymptomSeed struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type PartSeed struct {
	Name             string   `yaml:"name"`
	Code             string   `yaml:"code"`
	Description      string   `yaml:"description"`
	CompatibleModels []string `yaml:"compatible_models"`
}

type ShowcaseMachineSeed struct {
	Name             string `yaml:"name"`
	Category         string `yaml:"category"`
	ShortDescription string `yaml:"short_description"`
	Description      string `yaml:"description"`
	Capacity         string `yaml:"capacity"`
	Power            string `yaml:"power"`
	Dimensions       string `yaml:"dimensions"`
	Warranty         string `yaml:"warranty"`
	Featured         bool   `yaml:"featured"`
	DisplayOrder     int    `yaml:"display_order"`
}

// PasswordHasher hashes seed passwords before the accounts are stored.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Seeder struct {
	users    user.Repository
	models   catalog.MachineModelRepository
	symptoms catalog.SymptomRepository
	parts    catalog.PartRepository
	showcase showcase.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewSeeder(
	users user.Repository,
	models catalog.MachineModelRepository,
	symptoms catalog.SymptomRepository,
	parts catalog.PartRepository,
	showcaseRepo showcase.Repository,
	hasher PasswordHasher,
) *Seeder {
	return &Seeder{
		users:    users,
		models:   models,
		symptoms: symptoms,
		parts:    parts,
		showcase: showcaseRepo,
		hasher:   hasher,
		logger:   logger.NewLogger().With("component", "seeder"),
	}
}

// LoadFile parses a seed YAML file.
func LoadFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return &file, nil
}

// Run applies the seed file. Existing users (by email) and showcase
// machines (by slug) are skipped so the command is rerunnable.
func (s *Seeder) Run(ctx context.Context, file *SeedFile) error {
	if err := s.seedUsers(ctx, file.Users); err != nil {
		return err
	}

	modelIDsByName, err := s.seedMachineModels(ctx, file.MachineModels)
	if err != nil {
		return err
	}

	if err := s.seedSymptoms(ctx, file.Symptoms); err != nil {
		return err
	}

	if err := s.seedParts(ctx, file.Parts, modelIDsByName); err != nil {
		return err
	}

	return s.seedShowcase(ctx, file.ShowcaseMachines)
}

func (s *Seeder) seedUsers(ctx context.Context, seeds []UserSeed) error {
	for _, seed := range seeds {
		exists, err := s.users.ExistsByEmail(ctx, seed.Email)
		if err != nil {
			return err
		}
		if exists {
			s.logger.Debugw("user already seeded", "email", seed.Email)
			continue
		}

		hash, err := s.hasher.Hash(seed.Password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		u, err := user.NewUser(seed.Name, seed.Email, hash,
			authorization.ParseUserRole(seed.Role), seed.Company, seed.Phone)
		if err != nil {
			return fmt.Errorf("invalid seed user %q: %w", seed.Email, err)
		}

		if err := s.users.Create(ctx, u); err != nil {
			return err
		}

		s.logger.Infow("seeded user", "email", seed.Email, "role", seed.Role)
	}

	return nil
}

func (s *Seeder) seedMachineModels(ctx context.Context, seeds []MachineModelSeed) (map[string]uint, error) {
	existing, err := s.models.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	idsByName := make(map[string]uint, len(existing)+len(seeds))
	for _, mm := range existing {
		idsByName[mm.Name()] = mm.ID()
	}

	for _, seed := range seeds {
		if _, ok := idsByName[seed.Name]; ok {
			continue
		}

		category, err := catalog.NewCategory(seed.Category)
		if err != nil {
			return nil, fmt.Errorf("invalid seed machine model %q: %w", seed.Name, err)
		}

		mm, err := catalog.NewMachineModel(seed.Name, category, seed.Description)
		if err != nil {
			return nil, fmt.Errorf("invalid seed machine model %q: %w", seed.Name, err)
		}

		if err := s.models.Create(ctx, mm); err != nil {
			return nil, err
		}

		idsByName[seed.Name] = mm.ID()
		s.logger.Infow("seeded machine model", "name", seed.Name)
	}

	return idsByName, nil
}

func (s *Seeder) seedSymptoms(ctx context.Context, seeds []SymptomSeed) error {
	existing, err := s.symptoms.ListActive(ctx)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(existing))
	for _, sym := range existing {
		seen[sym.Name()] = true
	}

	for _, seed := range seeds {
		if seen[seed.Name] {
			continue
		}

		category, err := catalog.NewCategory(seed.Category)
		if err != nil {
			return fmt.Errorf("invalid seed symptom %q: %w", seed.Name, err)
		}

		sym, err := catalog.NewSymptom(seed.Name, category)
		if err != nil {
			return fmt.Errorf("invalid seed symptom %q: %w", seed.Name, err)
		}

		if err := s.symptoms.Create(ctx, sym); err != nil {
			return err
		}

		s.logger.Infow("seeded symptom", "name", seed.Name)
	}

	return nil
}

func (s *Seeder) seedParts(ctx context.Context, seeds []PartSeed, modelIDsByName map[string]uint) error {
	existing, err := s.parts.ListActive(ctx)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.Name()] = true
	}

	for _, seed := range seeds {
		if seen[seed.Name] {
			continue
		}

		var compatibleIDs []uint
		for _, modelName := range seed.CompatibleModels {
			id, ok := modelIDsByName[modelName]
			if !ok {
				return fmt.Errorf("seed part %q references unknown model %q", seed.Name, modelName)
			}
			compatibleIDs = append(compatibleIDs, id)
		}

		p, err := catalog.NewPart(seed.Name, seed.Code, seed.Description, compatibleIDs)
		if err != nil {
			return fmt.Errorf("invalid seed part %q: %w", seed.Name, err)
		}

		if err := s.parts.Create(ctx, p); err != nil {
			return err
		}

		s.logger.Infow("seeded part", "name", seed.Name)
	}

	return nil
}

func (s *Seeder) seedShowcase(ctx context.Context, seeds []ShowcaseMachineSeed) error {
	for _, seed := range seeds {
		category, err := catalog.NewCategory(seed.Category)
		if err != nil {
			return fmt.Errorf("invalid seed showcase machine %q: %w", seed.Name, err)
		}

		specs := showcase.Specs{
			Capacity:   seed.Capacity,
			Power:      seed.Power,
			Dimensions: seed.Dimensions,
			Warranty:   seed.Warranty,
		}
		m, err := showcase.NewMachine(seed.Name, category, seed.ShortDescription,
			seed.Description, specs, "", seed.Featured, seed.DisplayOrder)
		if err != nil {
			return fmt.Errorf("invalid seed showcase machine %q: %w", seed.Name, err)
		}

		exists, err := s.showcase.ExistsBySlug(ctx, m.Slug())
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		if err := s.showcase.Create(ctx, m); err != nil {
			return err
		}

		s.logger.Infow("seeded showcase machine", "slug", m.Slug())
	}

	return nil
}
