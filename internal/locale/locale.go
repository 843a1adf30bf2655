// internal/locale/locale.go
package locale

import (
	"embed"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var files embed.FS

// Идентификаторы сообщений
const (
	MenuTitle     = "MenuTitle"
	MenuStart     = "MenuStart"
	MenuQuit      = "MenuQuit"
	MenuHint      = "MenuHint"
	PlayScore     = "PlayScore"
	PlayTimeLeft  = "PlayTimeLeft"
	PlayHint      = "PlayHint"
	PauseTitle    = "PauseTitle"
	PauseHint     = "PauseHint"
	GameOverTitle = "GameOverTitle"
	GameOverScore = "GameOverScore"
	GameOverBest  = "GameOverBest"
	GameOverHint  = "GameOverHint"
)

// Catalog resolves message ids to text in one language.
type Catalog struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// Supported returns the languages with a bundled message file.
func Supported() []language.Tag {
	return newBundle().LanguageTags()
}

// New loads the bundled messages and returns a Catalog for locale.
func New(locale string) (*Catalog, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("failed to parse locale %q: %w", locale, err)
	}
	bundle := newBundle()
	if !slices.Contains(bundle.LanguageTags(), tag) {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	return &Catalog{
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
	}, nil
}

// Tag returns the catalog language.
func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// T returns the text for id, or id itself if no message exists.
func (c *Catalog) T(id string) string {
	return c.Tf(id, nil)
}

// Tf is T with template data.
func (c *Catalog) Tf(id string, data map[string]any) string {
	text, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return text
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	entries, err := files.ReadDir("locales")
	if err != nil {
		panic(err) // встроенные файлы есть всегда
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(files, "locales/"+entry.Name()); err != nil {
			panic(fmt.Sprintf("locale: bad bundled file %s: %v", entry.Name(), err))
		}
	}
	return bundle
}
