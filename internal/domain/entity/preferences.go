package entity

// Theme tema visual de la página.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid indica si el tema es uno de los soportados.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Preferences preferencias del visitante guardadas junto al inventario.
type Preferences struct {
	Theme      Theme
	Language   string // código BCP-47 soportado (ro, en)
	FirstVisit bool
}
