package models

import "time"

// Company defines the company model based on the 'companies' table.
type Company struct {
	ID          int64         `json:"company_id" db:"company_id"`
	Name        string        `json:"company_name" db:"company_name"`
	Type        string        `json:"company_type" db:"company_type"`
	Industry    *string       `json:"industry,omitempty" db:"industry"`
	Description *string       `json:"company_description,omitempty" db:"company_description"`
	Website     *string       `json:"website,omitempty" db:"website"`
	LogoPath    *string       `json:"logo_path,omitempty" db:"logo_path"`
	Status      AccountStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"-" db:"created_at"`
}
