package usecase

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/text/language"

	"github.com/jhoicas/inventar/internal/application/dto"
	"github.com/jhoicas/inventar/internal/domain"
	"github.com/jhoicas/inventar/internal/domain/entity"
	"github.com/jhoicas/inventar/internal/domain/repository"
)

// Llaves de las preferencias en el mismo almacén que el inventario.
const (
	KeyTheme      = "currentThemeInventory"
	KeyLanguage   = "selectedLanguage"
	KeyFirstVisit = "firstVisit"
)

// Idiomas soportados; el primero es el predeterminado.
var supportedLanguages = []language.Tag{language.Romanian, language.English}

var languageMatcher = language.NewMatcher(supportedLanguages)

// PreferencesUseCase lee y escribe tema, idioma y la marca de primera visita.
type PreferencesUseCase struct {
	kv repository.KeyValueStore
}

// NewPreferencesUseCase construye el caso de uso sobre el almacén clave/valor.
func NewPreferencesUseCase(kv repository.KeyValueStore) *PreferencesUseCase {
	return &PreferencesUseCase{kv: kv}
}

// Get devuelve las preferencias. Un tema ausente o inválido se guarda como "dark".
// Sin idioma guardado se negocia con acceptLanguage (cabecera Accept-Language, puede ir vacía).
func (uc *PreferencesUseCase) Get(ctx context.Context, acceptLanguage string) (entity.Preferences, error) {
	theme, err := uc.theme(ctx)
	if err != nil {
		return entity.Preferences{}, err
	}

	lang, found, err := uc.kv.Get(ctx, KeyLanguage)
	if err != nil {
		return entity.Preferences{}, fmt.Errorf("preferencias: idioma: %w", err)
	}
	if !found || lang == "" {
		lang = NegotiateLanguage(acceptLanguage)
	}

	visited, found, err := uc.kv.Get(ctx, KeyFirstVisit)
	if err != nil {
		return entity.Preferences{}, fmt.Errorf("preferencias: primera visita: %w", err)
	}
	firstVisit := true
	if found {
		if b, perr := strconv.ParseBool(visited); perr == nil {
			firstVisit = b
		}
	}

	return entity.Preferences{Theme: theme, Language: lang, FirstVisit: firstVisit}, nil
}

// Update aplica los cambios presentes en el request y devuelve el estado resultante.
// firstVisit=true vuelve a mostrar la bienvenida; false equivale a MarkVisited.
func (uc *PreferencesUseCase) Update(ctx context.Context, in dto.UpdatePreferencesRequest) (entity.Preferences, error) {
	if in.Theme != nil {
		t := entity.Theme(*in.Theme)
		if !t.Valid() {
			return entity.Preferences{}, fmt.Errorf("tema %q: %w", *in.Theme, domain.ErrInvalidInput)
		}
		if _, err := uc.ToggleTheme(ctx, t == entity.ThemeDark); err != nil {
			return entity.Preferences{}, err
		}
	}
	if in.Language != nil {
		lang, err := SupportedLanguage(*in.Language)
		if err != nil {
			return entity.Preferences{}, err
		}
		if err := uc.kv.Set(ctx, KeyLanguage, lang); err != nil {
			return entity.Preferences{}, fmt.Errorf("preferencias: guardar idioma: %w", err)
		}
	}
	if in.FirstVisit != nil {
		if *in.FirstVisit {
			if err := uc.kv.Set(ctx, KeyFirstVisit, strconv.FormatBool(true)); err != nil {
				return entity.Preferences{}, fmt.Errorf("preferencias: guardar primera visita: %w", err)
			}
		} else if err := uc.MarkVisited(ctx); err != nil {
			return entity.Preferences{}, err
		}
	}
	return uc.Get(ctx, "")
}

// ToggleTheme guarda "dark" si dark es true, si no "light".
func (uc *PreferencesUseCase) ToggleTheme(ctx context.Context, dark bool) (entity.Theme, error) {
	t := entity.ThemeLight
	if dark {
		t = entity.ThemeDark
	}
	if err := uc.kv.Set(ctx, KeyTheme, string(t)); err != nil {
		return "", fmt.Errorf("preferencias: guardar tema: %w", err)
	}
	return t, nil
}

// MarkVisited apaga la marca de primera visita.
func (uc *PreferencesUseCase) MarkVisited(ctx context.Context) error {
	if err := uc.kv.Set(ctx, KeyFirstVisit, "false"); err != nil {
		return fmt.Errorf("preferencias: guardar primera visita: %w", err)
	}
	return nil
}

func (uc *PreferencesUseCase) theme(ctx context.Context) (entity.Theme, error) {
	raw, found, err := uc.kv.Get(ctx, KeyTheme)
	if err != nil {
		return "", fmt.Errorf("preferencias: tema: %w", err)
	}
	t := entity.Theme(raw)
	if found && t.Valid() {
		return t, nil
	}
	if err := uc.kv.Set(ctx, KeyTheme, string(entity.ThemeDark)); err != nil {
		return "", fmt.Errorf("preferencias: guardar tema: %w", err)
	}
	return entity.ThemeDark, nil
}

// SupportedLanguage valida un código BCP-47 y lo reduce al idioma soportado ("ro-RO" → "ro").
// Códigos mal formados o sin correspondencia devuelven ErrInvalidInput.
func SupportedLanguage(code string) (string, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("idioma %q: %w", code, domain.ErrInvalidInput)
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("idioma %q no soportado: %w", code, domain.ErrInvalidInput)
	}
	return baseCode(supportedLanguages[idx]), nil
}

// NegotiateLanguage elige el idioma soportado más cercano a una cabecera Accept-Language.
// Vacía o ilegible devuelve el predeterminado.
func NegotiateLanguage(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return baseCode(supportedLanguages[0])
	}
	_, idx, _ := languageMatcher.Match(tags...)
	return baseCode(supportedLanguages[idx])
}

func baseCode(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
