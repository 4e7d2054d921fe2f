package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// pack is the on-disk shape of a content pack file.
type pack struct {
	FactSets []FactSet `json:"fact_sets"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledPackSchema compiles the pack schema once and caches it.
func compiledPackSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal for a clean representation.
		b, err := json.Marshal(packSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal pack schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse pack schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://content-pack.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// ParsePack validates raw JSON against the pack schema and returns the
// contained fact sets. Facts with empty display text get the canonical
// "A × B" form.
func ParsePack(raw []byte) ([]FactSet, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compiledPackSchema()
	if err != nil {
		return nil, fmt.Errorf("compile pack schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var p pack
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode pack: %w", err)
	}

	for si := range p.FactSets {
		for fi := range p.FactSets[si].Facts {
			f := &p.FactSets[si].Facts[fi]
			if f.Text == "" {
				f.Text = fmt.Sprintf("%d × %d", f.FactorA, f.FactorB)
			}
		}
	}
	return p.FactSets, nil
}

// LoadPackFile reads and validates a content pack from path.
func LoadPackFile(path string) ([]FactSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content pack: %w", err)
	}
	sets, err := ParsePack(raw)
	if err != nil {
		return nil, fmt.Errorf("content pack %s: %w", path, err)
	}
	return sets, nil
}
