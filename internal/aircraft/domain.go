package aircraft

// Type represents an aircraft type used to scope kits and tooling.
type Type struct {
	ID           int64  `json:"id"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Variant      string `json:"variant,omitempty"`
}

// TypeInput is the create/edit form payload.
type TypeInput struct {
	Manufacturer string `json:"manufacturer" validate:"required,max=80"`
	Model        string `json:"model" validate:"required,max=80"`
	Variant      string `json:"variant" validate:"max=40"`
}
