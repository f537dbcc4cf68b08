package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"taxpro-backend/internal/commission"
	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/logger"
	"taxpro-backend/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const seedActor = "taxproctl"

type profileSeed struct {
	Email      string `yaml:"email"`
	Password   string `yaml:"password"`
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	Phone      string `yaml:"phone,omitempty"`
	Role       string `yaml:"role"`
	VanityCode string `yaml:"vanity_code,omitempty"`
}

type restrictionSeed struct {
	PathPattern  string   `yaml:"path_pattern"`
	AllowedRoles []string `yaml:"allowed_roles"`
	RedirectTo   string   `yaml:"redirect_to,omitempty"`
	IsActive     *bool    `yaml:"is_active,omitempty"`
}

// seedFile is the layout of the yaml passed to `taxproctl seed`
type seedFile struct {
	Profiles         []profileSeed                `yaml:"profiles"`
	PageRestrictions []restrictionSeed            `yaml:"page_restrictions"`
	Tiers            map[string][]commission.Tier `yaml:"tiers,omitempty"`
}

// seedSummary counts what a seed run created
type seedSummary struct {
	ProfilesCreated     int
	ProfilesExisting    int
	RestrictionsCreated int
	RestrictionsExisted int
	TiersWritten        bool
}

type seeder struct {
	profiles     service.ProfileServiceInterface
	restrictions service.PageRestrictionServiceInterface
}

func seedCmd() *cobra.Command {
	var (
		file     string
		tiersOut string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load initial data from a yaml file",
		Long: `Load profiles, page restrictions and commission tiers from a yaml file.

Existing profiles (by email) and restrictions (by path pattern) are left untouched, so the
command can be re-run safely. Tiers are validated and written to --tiers-out, which
defaults to COMMISSION_TIERS_FILE.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadSeedFile(file)
			if err != nil {
				return err
			}

			rt, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			if tiersOut == "" {
				tiersOut = rt.cfg.CommissionTiersFile
			}

			s := &seeder{profiles: rt.services.Profiles, restrictions: rt.services.PageRestrictions}
			summary, err := s.run(cmd.Context(), data, tiersOut)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Profiles: %d created, %d already present\n", summary.ProfilesCreated, summary.ProfilesExisting)
			fmt.Fprintf(cmd.OutOrStdout(), "Page restrictions: %d created, %d already present\n", summary.RestrictionsCreated, summary.RestrictionsExisted)
			if summary.TiersWritten {
				fmt.Fprintf(cmd.OutOrStdout(), "Commission tiers written to %s\n", tiersOut)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Seed data file (yaml)")
	cmd.Flags().StringVar(&tiersOut, "tiers-out", "", "Where to write commission tiers (default COMMISSION_TIERS_FILE)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func loadSeedFile(path string) (*seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data seedFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &data, nil
}

func (s *seeder) run(ctx context.Context, data *seedFile, tiersOut string) (*seedSummary, error) {
	summary := &seedSummary{}

	// Tiers first so a bad table fails the run before anything is written
	if len(data.Tiers) > 0 {
		written, err := writeTiers(ctx, data.Tiers, tiersOut)
		if err != nil {
			return nil, err
		}
		summary.TiersWritten = written
	}

	for _, p := range data.Profiles {
		created, err := s.seedProfile(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("failed to seed profile %s: %w", p.Email, err)
		}
		if created {
			summary.ProfilesCreated++
		} else {
			summary.ProfilesExisting++
		}
	}

	for _, r := range data.PageRestrictions {
		created, err := s.seedRestriction(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("failed to seed page restriction %s: %w", r.PathPattern, err)
		}
		if created {
			summary.RestrictionsCreated++
		} else {
			summary.RestrictionsExisted++
		}
	}

	return summary, nil
}

// seedProfile registers the profile and then applies what self-service signup cannot:
// staff roles and vanity codes.
func (s *seeder) seedProfile(ctx context.Context, p profileSeed) (bool, error) {
	role := models.Role(strings.ToLower(strings.TrimSpace(p.Role)))
	if role == "" {
		role = models.RoleClient
	}
	if !role.IsValid() {
		return false, fmt.Errorf("unknown role %q", p.Role)
	}

	signupRole := role
	if role.IsStaff() {
		signupRole = models.RoleClient
	}

	resp, err := s.profiles.Register(ctx, &service.RegisterRequest{
		Email:     p.Email,
		Password:  p.Password,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Role:      signupRole,
	})
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			return false, nil
		}
		return false, err
	}

	id := resp.Profile.ID
	if role != signupRole {
		if _, err := s.profiles.SetRole(ctx, id, role); err != nil {
			return false, err
		}
	}
	if p.VanityCode != "" {
		if _, err := s.profiles.SetVanityCode(ctx, id, &service.SetVanityCodeRequest{Code: p.VanityCode}); err != nil {
			return false, err
		}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"profile_id": id,
		"role":       role,
	}).Debug("Seeded profile")
	return true, nil
}

func (s *seeder) seedRestriction(ctx context.Context, r restrictionSeed) (bool, error) {
	roles := make([]models.Role, 0, len(r.AllowedRoles))
	for _, name := range r.AllowedRoles {
		roles = append(roles, models.Role(strings.ToLower(strings.TrimSpace(name))))
	}

	_, err := s.restrictions.Create(ctx, &service.PageRestrictionRequest{
		PathPattern:  r.PathPattern,
		AllowedRoles: roles,
		RedirectTo:   r.RedirectTo,
		IsActive:     r.IsActive,
	}, seedActor)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// writeTiers validates the tier table and writes it where the server loads it from.
// It reports false when there is nowhere to write.
func writeTiers(ctx context.Context, tiers map[string][]commission.Tier, path string) (bool, error) {
	out, err := yaml.Marshal(map[string]interface{}{"tiers": tiers})
	if err != nil {
		return false, fmt.Errorf("failed to encode commission tiers: %w", err)
	}
	if _, err := commission.ParseTable(out); err != nil {
		return false, err
	}

	if path == "" {
		logger.WithContext(ctx).Warn("Commission tiers are valid but COMMISSION_TIERS_FILE is not set; skipping")
		return false, nil
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return false, fmt.Errorf("failed to write commission tiers: %w", err)
	}
	return true, nil
}
