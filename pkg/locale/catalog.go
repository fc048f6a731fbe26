package locale

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog holds translations for every loaded language, keyed by language
// code and then by dot-separated message key.
type Catalog struct {
	messages map[string]map[string]string
}

// LoadCatalog reads every *.yml and *.yaml file from fsys. Each file's name
// (without extension) is the language code it carries; nested YAML maps
// flatten into dot-separated keys, so
//
//	nav:
//	  appointments: Randevular
//
// in tr.yml becomes the key "nav.appointments" for language "tr".
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}

	catalog := &Catalog{messages: make(map[string]map[string]string)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := path.Ext(entry.Name())
		if !strings.EqualFold(ext, ".yml") && !strings.EqualFold(ext, ".yaml") {
			continue
		}

		data, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, errors.Join(ErrFailedToReadCatalog, err)
		}

		var tree map[string]any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, errors.Join(ErrFailedToParseCatalog, fmt.Errorf("file %s: %w", entry.Name(), err))
		}

		lang := Normalize(strings.TrimSuffix(entry.Name(), ext))
		flat := catalog.messages[lang]
		if flat == nil {
			flat = make(map[string]string)
			catalog.messages[lang] = flat
		}
		flatten("", tree, flat)
	}

	if len(catalog.messages) == 0 {
		return nil, ErrEmptyCatalog
	}
	return catalog, nil
}

// T resolves key for lang. A key missing from lang falls back to the same key
// in Default; a key missing everywhere resolves to the key itself, which
// keeps untranslated UI readable instead of blank.
func (c *Catalog) T(lang, key string) string {
	lang = Normalize(lang)
	if msg, ok := c.messages[lang][key]; ok {
		return msg
	}
	if msg, ok := c.messages[Default][key]; ok {
		return msg
	}
	return key
}

// Languages returns the codes the catalog actually loaded.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.messages))
	for lang := range c.messages {
		langs = append(langs, lang)
	}
	return langs
}

func flatten(prefix string, tree map[string]any, out map[string]string) {
	for key, value := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flatten(full, v, out)
		case string:
			out[full] = v
		default:
			out[full] = fmt.Sprint(v)
		}
	}
}
