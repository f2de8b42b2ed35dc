package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// tomlTheme is the TOML-serializable representation of a Theme.
type tomlTheme struct {
	Name    string      `toml:"name"`
	Base    tomlBase    `toml:"base"`
	Chrome  tomlChrome  `toml:"chrome"`
	Catalog tomlCatalog `toml:"catalog"`
	Special tomlSpecial `toml:"special"`
}

type tomlBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type tomlChrome struct {
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
	Title       string `toml:"title"`
}

type tomlCatalog struct {
	Price      string `toml:"price"`
	InStock    string `toml:"in_stock"`
	OutOfStock string `toml:"out_of_stock"`
	Err        string `toml:"error"`
}

type tomlSpecial struct {
	SearchHighlight string `toml:"search_highlight"`
	HelpKey         string `toml:"help_key"`
	HelpDesc        string `toml:"help_desc"`
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition. Colors left empty fall back
// to the default theme's values; non-empty colors must be #rrggbb.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt tomlTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if tt.Name == "" {
		return Theme{}, fmt.Errorf("theme: missing name")
	}

	base := defaultTheme()
	t := Theme{
		Name:       tt.Name,
		Background: pick(tt.Base.Background, base.Background),
		Foreground: pick(tt.Base.Foreground, base.Foreground),
		Dim:        pick(tt.Base.Dim, base.Dim),
		Accent:     pick(tt.Base.Accent, base.Accent),

		Border:      pick(tt.Chrome.Border, base.Border),
		BorderFocus: pick(tt.Chrome.BorderFocus, base.BorderFocus),
		Title:       pick(tt.Chrome.Title, base.Title),

		Price:      pick(tt.Catalog.Price, base.Price),
		InStock:    pick(tt.Catalog.InStock, base.InStock),
		OutOfStock: pick(tt.Catalog.OutOfStock, base.OutOfStock),
		Err:        pick(tt.Catalog.Err, base.Err),

		SearchHighlight: pick(tt.Special.SearchHighlight, base.SearchHighlight),
		HelpKey:         pick(tt.Special.HelpKey, base.HelpKey),
		HelpDesc:        pick(tt.Special.HelpDesc, base.HelpDesc),
	}

	if err := validate(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadDir registers every *.toml theme in dir. Unreadable or invalid files
// are skipped and reported together in the returned error; valid themes are
// registered regardless.
func LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("theme: read dir %s: %w", dir, err)
	}

	var problems []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", e.Name(), err))
			continue
		}
		t, err := LoadFromTOML(data)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", e.Name(), err))
			continue
		}
		Register(t)
	}

	if len(problems) > 0 {
		return fmt.Errorf("theme: %s", strings.Join(problems, "; "))
	}
	return nil
}

func pick(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func validate(t Theme) error {
	fields := map[string]string{
		"background":       t.Background,
		"foreground":       t.Foreground,
		"dim":              t.Dim,
		"accent":           t.Accent,
		"border":           t.Border,
		"border_focus":     t.BorderFocus,
		"title":            t.Title,
		"price":            t.Price,
		"in_stock":         t.InStock,
		"out_of_stock":     t.OutOfStock,
		"error":            t.Err,
		"search_highlight": t.SearchHighlight,
		"help_key":         t.HelpKey,
		"help_desc":        t.HelpDesc,
	}
	for name, v := range fields {
		if !hexColorRegex.MatchString(v) {
			return fmt.Errorf("theme %q: field %s has invalid color %q", t.Name, name, v)
		}
	}
	return nil
}
