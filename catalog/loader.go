// Package catalog reads the declarative intent catalog used for training and
// for the static responses.
package catalog

import (
	"chatty/domain"
	"chatty/errors"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

// Load reads a catalog file. The format (JSON or YAML) is sniffed from the content.
func Load(path string) (domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	catalog, err := Parse(data)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return catalog, nil
}

// Parse decodes and validates a catalog.
func Parse(data []byte) (domain.Catalog, error) {
	var catalog domain.Catalog
	switch format(data) {
	case "json":
		if err := json.Unmarshal(data, &catalog); err != nil {
			return domain.Catalog{}, fmt.Errorf("decoding json: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return domain.Catalog{}, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return domain.Catalog{}, errors.ErrUnsupportedCatalogFormat
	}
	if err := Validate(catalog); err != nil {
		return domain.Catalog{}, err
	}
	return catalog, nil
}

// Validate checks the structural rules of a catalog.
func Validate(catalog domain.Catalog) error {
	if len(catalog.Intents) == 0 {
		return errors.ErrEmptyCatalog
	}
	if err := validate.Struct(catalog); err != nil {
		return err
	}
	tags := lo.Map(catalog.Intents, func(intent domain.Intent, _ int) string { return intent.Tag })
	if dup := lo.FindDuplicates(tags); len(dup) > 0 {
		return fmt.Errorf("%w: %v", errors.ErrDuplicateTag, dup)
	}
	for _, intent := range catalog.Intents {
		if !intent.IsDynamic() && len(intent.Responses) == 0 {
			return fmt.Errorf("%w: %s", errors.ErrMissingResponses, intent.Tag)
		}
	}
	return nil
}

func format(data []byte) string {
	mtype := mimetype.Detect(data)
	if mtype.Is("application/json") {
		return "json"
	}
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return "yaml"
		}
	}
	return ""
}
