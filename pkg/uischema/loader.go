package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/field"
)

// LoadFS walks fsys and parses every JSON/YAML schema file. When fsys is nil
// or holds no schema files the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]Form)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for formID, raw := range doc.Forms {
			id := strings.TrimSpace(formID)
			if id == "" {
				return fmt.Errorf("uischema: file %s defines an empty form id", path)
			}
			if _, exists := store.forms[id]; exists {
				return fmt.Errorf("uischema: duplicate form %q (file %s)", id, path)
			}
			form, err := normaliseForm(raw, id, path)
			if err != nil {
				return err
			}
			store.forms[id] = form
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Form returns the form registered under id.
func (s *Store) Form(id string) (Form, bool) {
	if s == nil {
		return Form{}, false
	}
	form, ok := s.forms[id]
	return form, ok
}

// IDs lists the loaded form ids in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("uischema: parse %s: %w", source, err)
	}
	return doc, nil
}

func normaliseForm(raw formFile, id, source string) (Form, error) {
	form := Form{
		ID:     id,
		Source: source,
		Title:  strings.TrimSpace(raw.Title),
		Fields: make([]FieldConfig, 0, len(raw.Fields)),
	}
	seen := make(map[string]struct{}, len(raw.Fields))
	for idx, cfg := range raw.Fields {
		cfg.Name = strings.TrimSpace(cfg.Name)
		if cfg.Name == "" {
			return Form{}, fmt.Errorf("uischema: form %q (file %s) field %d has no name", id, source, idx)
		}
		if _, dup := seen[cfg.Name]; dup {
			return Form{}, fmt.Errorf("uischema: form %q (file %s) defines duplicate field %q", id, source, cfg.Name)
		}
		seen[cfg.Name] = struct{}{}
		if _, err := field.ParseMode(cfg.Mode); err != nil {
			return Form{}, fmt.Errorf("uischema: form %q (file %s) field %q: %w", id, source, cfg.Name, err)
		}
		form.Fields = append(form.Fields, cloneFieldConfig(cfg))
	}
	return form, nil
}

func cloneFieldConfig(cfg FieldConfig) FieldConfig {
	out := cfg
	if len(cfg.Validations) > 0 {
		out.Validations = append(out.Validations[:0:0], cfg.Validations...)
	}
	return out
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
