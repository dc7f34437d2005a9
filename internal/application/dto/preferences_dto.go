package dto

// PreferencesResponse preferencias actuales.
type PreferencesResponse struct {
	Theme      string `json:"theme"`
	Language   string `json:"language"`
	FirstVisit bool   `json:"firstVisit"`
}

// UpdatePreferencesRequest cambios parciales; los campos nil no se tocan.
type UpdatePreferencesRequest struct {
	Theme      *string `json:"theme,omitempty"`
	Language   *string `json:"language,omitempty"`
	FirstVisit *bool   `json:"firstVisit,omitempty"`
}

// ToggleThemeRequest interruptor de tema: dark=true guarda "dark", false guarda "light".
type ToggleThemeRequest struct {
	Dark bool `json:"dark"`
}
