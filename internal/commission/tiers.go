package commission

import (
	"fmt"
	"os"
	"sort"

	"taxpro-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

// Tier is one rung of a role's commission ladder
type Tier struct {
	Name           string `yaml:"name" json:"name"`
	MinConversions int64  `yaml:"min_conversions" json:"min_conversions"`
	RateBPS        int    `yaml:"rate_bps" json:"rate_bps"`
}

// Table maps referrer roles to their tiers
type Table map[models.Role][]Tier

// DefaultTable is used when no tier file is configured
func DefaultTable() Table {
	return Table{
		models.RoleClient: {
			{Name: "client", MinConversions: 0, RateBPS: 1000},
		},
		models.RoleAffiliate: {
			{Name: "affiliate-standard", MinConversions: 0, RateBPS: 1500},
			{Name: "affiliate-silver", MinConversions: 10, RateBPS: 2000},
			{Name: "affiliate-gold", MinConversions: 25, RateBPS: 2500},
		},
		models.RoleTaxPreparer: {
			{Name: "preparer", MinConversions: 0, RateBPS: 500},
		},
	}
}

type tierFile struct {
	Tiers map[string][]Tier `yaml:"tiers"`
}

// LoadTable reads a tier table from a yaml file. An empty path returns DefaultTable.
func LoadTable(path string) (Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read commission tiers: %w", err)
	}
	return ParseTable(data)
}

// ParseTable parses yaml of the form:
//
//	tiers:
//	  affiliate:
//	    - {name: standard, min_conversions: 0, rate_bps: 1500}
func ParseTable(data []byte) (Table, error) {
	var f tierFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse commission tiers: %w", err)
	}

	table := Table{}
	for roleName, tiers := range f.Tiers {
		role := models.Role(roleName)
		if !role.IsValid() {
			return nil, fmt.Errorf("unknown role %q in commission tiers", roleName)
		}
		for _, t := range tiers {
			if t.RateBPS < 0 || t.RateBPS > 10000 {
				return nil, fmt.Errorf("rate_bps for %s/%s must be between 0 and 10000", roleName, t.Name)
			}
			if t.MinConversions < 0 {
				return nil, fmt.Errorf("min_conversions for %s/%s must not be negative", roleName, t.Name)
			}
		}
		table[role] = tiers
	}
	return table, nil
}

// Lookup returns the tier for a referrer of role with priorConversions already converted.
// The matching tier has the highest MinConversions not above priorConversions.
func (t Table) Lookup(role models.Role, priorConversions int64) (Tier, bool) {
	tiers := append([]Tier(nil), t[role]...)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinConversions < tiers[j].MinConversions })

	var (
		match Tier
		found bool
	)
	for _, tier := range tiers {
		if tier.MinConversions > priorConversions {
			break
		}
		match, found = tier, true
	}
	return match, found
}

// Calculate returns base*bps/10000 rounded half up, in cents
func Calculate(baseCents int64, rateBPS int) int64 {
	if baseCents <= 0 || rateBPS <= 0 {
		return 0
	}
	return (baseCents*int64(rateBPS) + 5000) / 10000
}
