package models

import "strings"

// PageRestriction limits a site path (exact or "/prefix/*") to a set of roles
type PageRestriction struct {
	BaseModel
	PathPattern  string `json:"path_pattern" gorm:"uniqueIndex;not null;size:300"`
	AllowedRoles string `json:"allowed_roles" gorm:"not null;size:200"` // comma separated roles
	RedirectTo   string `json:"redirect_to" gorm:"size:300"`
	IsActive     bool   `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for PageRestriction
func (PageRestriction) TableName() string {
	return "page_restrictions"
}

// Roles splits AllowedRoles into trimmed role values
func (p *PageRestriction) Roles() []Role {
	roles := make([]Role, 0)
	for _, part := range strings.Split(p.AllowedRoles, ",") {
		if r := strings.TrimSpace(part); r != "" {
			roles = append(roles, Role(r))
		}
	}
	return roles
}
