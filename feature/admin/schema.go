package admin

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// Schema names.
const (
	SchemaPlace   = "place"
	SchemaBreak   = "break"
	SchemaCommand = "command"
	SchemaPlayer  = "player"
)

// Validator checks request bodies against the embedded JSON schemas.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

// NewValidator compiles every embedded schema.
func NewValidator() (*Validator, error) {
	v := &Validator{schemas: make(map[string]*jsonschema.Schema)}
	for _, name := range []string{SchemaPlace, SchemaBreak, SchemaCommand, SchemaPlayer} {
		file := "schemas/" + name + ".schema.json"
		raw, err := schemaFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", name, err)
		}
		s, err := jsonschema.CompileString(file, string(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		v.schemas[name] = s
	}
	return v, nil
}

// Decode validates body against the named schema and unmarshals it into out.
func (v *Validator) Decode(name string, body []byte, out any) error {
	s, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %s", name)
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
