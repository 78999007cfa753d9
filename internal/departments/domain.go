package departments

import "time"

// Department represents an organizational unit.
type Department struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	ManagerID   int64     `json:"manager_id,omitempty"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DepartmentInput is the create/edit form payload.
type DepartmentInput struct {
	Name      string `json:"name" validate:"required,max=120"`
	Code      string `json:"code" validate:"required,max=16"`
	ManagerID int64  `json:"manager_id,omitempty"`
}
