// Package catalog loads effect definitions from YAML
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/bedrock-effects/internal/effects"
	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
)

//go:embed default.yaml
var defaultCatalog []byte

type document struct {
	Definitions []effects.Definition `yaml:"definitions"`
	ChargeItems []effects.ChargeItem `yaml:"charge_items"`
}

// Catalog holds validated definitions keyed by id. Returned pointers are
// shared; callers must not mutate them.
type Catalog struct {
	definitions map[string]*effects.Definition
	chargeItems map[string]*effects.ChargeItem
}

// Default returns the embedded stock catalog
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// LoadFile reads a catalog from path
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to open catalog %s", path)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to load catalog %s", path)
	}
	return c, nil
}

// Load decodes and validates a catalog. Unknown fields are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperr.Validationf("catalog is empty")
		}
		return nil, apperr.WrapWithCode(err, apperr.CodeValidation, "failed to decode catalog")
	}

	c := &Catalog{
		definitions: make(map[string]*effects.Definition, len(doc.Definitions)),
		chargeItems: make(map[string]*effects.ChargeItem, len(doc.ChargeItems)),
	}

	for i := range doc.Definitions {
		def := &doc.Definitions[i]
		if err := validateDefinition(i, def); err != nil {
			return nil, err
		}
		if _, exists := c.definitions[def.ID]; exists {
			return nil, apperr.Validationf("definition %s is declared twice", def.ID).
				WithMeta("definition_id", def.ID)
		}
		c.definitions[def.ID] = def
	}

	for i := range doc.ChargeItems {
		item := &doc.ChargeItems[i]
		if item.ID == "" {
			return nil, apperr.Validationf("charge item %d has no id", i)
		}
		if item.Time < 0 {
			return nil, apperr.Validationf("charge item %s has a negative time", item.ID)
		}
		if _, exists := c.chargeItems[item.ID]; exists {
			return nil, apperr.Validationf("charge item %s is declared twice", item.ID)
		}
		c.chargeItems[item.ID] = item
	}

	return c, nil
}

func validateDefinition(index int, def *effects.Definition) error {
	if def.ID == "" {
		return apperr.Validationf("definition %d has no id", index)
	}
	if def.Duration <= 0 {
		return apperr.Validationf("definition %s must have a positive duration", def.ID).
			WithMeta("duration", def.Duration)
	}
	for _, status := range def.Effects {
		if status.Type == "" {
			return apperr.Validationf("definition %s has a status effect without a type", def.ID)
		}
	}
	for _, req := range def.CustomEffects {
		if req.Type == "" {
			return apperr.Validationf("definition %s has a custom effect without a type", def.ID)
		}
		if req.Duration != nil && *req.Duration < 0 {
			return apperr.Validationf("custom effect %s of %s has a negative duration", req.Type, def.ID)
		}
	}
	if def.Visual != nil && def.Visual.OnInterval != nil {
		interval := def.Visual.OnInterval
		for _, e := range slices.Concat(interval.Particles, interval.Sounds) {
			if e.Interval <= 0 {
				return apperr.Validationf("interval effect %s of %s needs a positive interval", e.ID, def.ID)
			}
		}
	}
	return nil
}

// Get returns a definition by id
func (c *Catalog) Get(id string) (*effects.Definition, bool) {
	def, ok := c.definitions[id]
	return def, ok
}

// IDs returns every definition id, sorted
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.definitions))
	for id := range c.definitions {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ChargeItem returns a charge item by id
func (c *Catalog) ChargeItem(id string) (*effects.ChargeItem, bool) {
	item, ok := c.chargeItems[id]
	return item, ok
}

// ChargeItemIDs returns every charge item id, sorted
func (c *Catalog) ChargeItemIDs() []string {
	ids := make([]string, 0, len(c.chargeItems))
	for id := range c.chargeItems {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
