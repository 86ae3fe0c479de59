// Package tools declares the catalog of DoorDash tools exposed over MCP,
// with input schemas reflected from the argument structs in args.go.
package tools

import (
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// Name identifies a tool.
type Name string

// Tool names, in catalog order.
const (
	CreateDeliveryQuote Name = "create_delivery_quote"
	CreateDelivery      Name = "create_delivery"
	GetDelivery         Name = "get_delivery"
	CancelDelivery      Name = "cancel_delivery"
	AcceptDeliveryQuote Name = "accept_delivery_quote"
	UpdateDelivery      Name = "update_delivery"
)

// ExternalDeliveryID is the argument that addresses a delivery.
const ExternalDeliveryID = "external_delivery_id"

// Descriptor describes an MCP tool and its input schema.
type Descriptor struct {
	Name        Name               `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

type declaration struct {
	name        Name
	description string
	args        any
}

var declarations = []declaration{
	{CreateDeliveryQuote, "Get a quote for a delivery request", DeliveryArgs{}},
	{CreateDelivery, "Create a new delivery request", DeliveryArgs{}},
	{GetDelivery, "Get the status of an existing delivery", GetDeliveryArgs{}},
	{CancelDelivery, "Cancel an existing delivery", CancelDeliveryArgs{}},
	{AcceptDeliveryQuote, "Accept a delivery quote and create the delivery", AcceptQuoteArgs{}},
	{UpdateDelivery, "Update the details of an existing delivery", UpdateDeliveryArgs{}},
}

var (
	catalog []Descriptor
	byName  map[Name]int
)

func init() {
	catalog = make([]Descriptor, 0, len(declarations))
	byName = make(map[Name]int, len(declarations))
	for _, d := range declarations {
		if _, dup := byName[d.name]; dup {
			panic(fmt.Sprintf("duplicate tool %q", d.name))
		}
		byName[d.name] = len(catalog)
		catalog = append(catalog, Descriptor{
			Name:        d.name,
			Description: d.description,
			InputSchema: InputSchema(reflect.TypeOf(d.args)),
		})
	}
}

// Catalog returns the tool descriptors in declaration order.
// The schemas are shared and must not be modified.
func Catalog() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the tool names in declaration order.
func Names() []Name {
	out := make([]Name, len(catalog))
	for i, d := range catalog {
		out[i] = d.Name
	}
	return out
}

// Resolve returns the descriptor for name.
func Resolve(name string) (Descriptor, bool) {
	i, ok := byName[Name(name)]
	if !ok {
		return Descriptor{}, false
	}
	return catalog[i], true
}

// InputSchema reflects t into a flat object schema carrying only type,
// properties and required, in the shape MCP clients expect.
func InputSchema(t reflect.Type) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct:             true,
		DoNotReference:             true,
		Anonymous:                  true,
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
	}
	s := r.ReflectFromType(t)
	return &jsonschema.Schema{
		Type:       s.Type,
		Properties: s.Properties,
		Required:   s.Required,
	}
}
