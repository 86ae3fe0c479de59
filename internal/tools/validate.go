package tools

import (
	"bytes"
	"encoding/json"
	"sync"

	"github.com/cockroachdb/errors"
	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce sync.Once
	compiled    map[Name]*sjsonschema.Schema
	compileErr  error
)

// Validate checks args against the input schema of the named tool.
// Schemas are advisory; only callers that opt into strict arguments use this.
func Validate(name string, args map[string]any) error {
	compileOnce.Do(compileAll)
	if compileErr != nil {
		return compileErr
	}
	sch, ok := compiled[Name(name)]
	if !ok {
		return errors.Newf("no schema for tool %q", name)
	}
	if args == nil {
		args = map[string]any{}
	}
	if err := sch.Validate(toJSONValue(args)); err != nil {
		return errors.Wrapf(err, "invalid arguments for %s", name)
	}
	return nil
}

func compileAll() {
	compiled = make(map[Name]*sjsonschema.Schema, len(catalog))
	for _, d := range catalog {
		sch, err := compile(d)
		if err != nil {
			compileErr = err
			return
		}
		compiled[d.Name] = sch
	}
}

func compile(d Descriptor) (*sjsonschema.Schema, error) {
	raw, err := json.Marshal(d.InputSchema)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal schema %s", d.Name)
	}
	doc, err := sjsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "unmarshal schema %s", d.Name)
	}
	url := string(d.Name) + ".json"
	c := sjsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, errors.Wrapf(err, "add schema resource %s", d.Name)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, errors.Wrapf(err, "compile schema %s", d.Name)
	}
	return sch, nil
}

// toJSONValue round-trips v through JSON so that values built in Go, such
// as int literals, match what the validator expects from decoded input.
func toJSONValue(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	out, err := sjsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return v
	}
	return out
}
