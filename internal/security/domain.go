package security

// Settings is the backend session security configuration. The timeout is
// expressed in minutes on the wire.
type Settings struct {
	SessionTimeoutMinutes int `json:"session_timeout_minutes"`
}

// SettingsInput updates the session security configuration.
type SettingsInput struct {
	SessionTimeoutMinutes int `json:"session_timeout_minutes" validate:"gte=5,lte=1440"`
}
