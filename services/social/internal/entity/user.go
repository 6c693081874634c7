package entity

import (
	"strconv"
	"strings"
	"time"
)

const EntityNameUser = "user"

const RoleAdministrators = "Administrators"

type User struct {
	ID            string           `json:"id"`
	FirstName     string           `json:"first_name"`
	LastName      string           `json:"last_name"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Username      string           `json:"username"`
	Active        bool             `json:"active"`
	Remarks       string           `json:"remarks"`
	LastLoginDate *time.Time       `json:"last_login_date,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	Properties    []EntityProperty `json:"-"`
	Roles         []Role           `json:"roles"`
	Educations    []Education      `json:"educations"`
}

// IsAdministrator is false for a nil user.
func (u *User) IsAdministrator() bool {
	if u == nil {
		return false
	}
	for _, role := range u.Roles {
		if role.SystemName == RoleAdministrators {
			return true
		}
	}
	return false
}

func (u *User) RoleIDs() []int {
	ids := make([]int, 0, len(u.Roles))
	for _, role := range u.Roles {
		ids = append(ids, role.ID)
	}
	return ids
}

func (u *User) Property(name string) (string, bool) {
	for _, p := range u.Properties {
		if p.PropertyName == name {
			return p.Value, true
		}
	}
	return "", false
}

// PropertyInt reads a numeric property, returning 0 when it is absent or not a number.
func (u *User) PropertyInt(name string) int {
	raw, ok := u.Property(name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.Trim(strings.TrimSpace(raw), `"`))
	if err != nil {
		return 0
	}
	return n
}

// SetProperty replaces or appends a property value in memory.
func (u *User) SetProperty(name, value string) {
	for i := range u.Properties {
		if u.Properties[i].PropertyName == name {
			u.Properties[i].Value = value
			return
		}
	}
	u.Properties = append(u.Properties, EntityProperty{
		EntityID:     u.ID,
		EntityName:   EntityNameUser,
		PropertyName: name,
		Value:        value,
	})
}

type Role struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	SystemName   string `json:"system_name"`
	IsSystemRole bool   `json:"is_system_role"`
}
