package jamf

import (
	"fmt"
	"strings"
)

// Endpoint describes one Classic API resource collection: how it is
// named on the CLI, where it lives on the wire, and which keys wrap
// its list and detail responses.
type Endpoint struct {
	// Name is the plural CLI name ("policies").
	Name string
	// Singular is the singular CLI alias ("policy").
	Singular string
	// Path is the URL segment under /JSSResource.
	Path string
	// ListKey wraps the collection in a get-all response.
	ListKey string
	// DetailKey wraps the object in a get-by-id response.
	DetailKey string
	// Fields is the CSV/table field subset for list output.
	Fields []string
}

var (
	Policies = Endpoint{
		Name: "policies", Singular: "policy", Path: "policies",
		ListKey: "policies", DetailKey: "policy",
		Fields: []string{"id", "name"},
	}
	Computers = Endpoint{
		Name: "computers", Singular: "computer", Path: "computers",
		ListKey: "computers", DetailKey: "computer",
		Fields: []string{"id", "name", "serial_number"},
	}
	Scripts = Endpoint{
		Name: "scripts", Singular: "script", Path: "scripts",
		ListKey: "scripts", DetailKey: "script",
		Fields: []string{"id", "name"},
	}
	Packages = Endpoint{
		Name: "packages", Singular: "package", Path: "packages",
		ListKey: "packages", DetailKey: "package",
		Fields: []string{"id", "name"},
	}
	// Groups are smart/static computer groups. The wire path and
	// response keys differ from the CLI name.
	Groups = Endpoint{
		Name: "groups", Singular: "group", Path: "computergroups",
		ListKey: "computer_groups", DetailKey: "computer_group",
		Fields: []string{"id", "name"},
	}
)

// Endpoints is the fixed set of supported resource collections.
var Endpoints = []Endpoint{Policies, Computers, Scripts, Packages, Groups}

// ByName resolves a CLI endpoint name, accepting the plural or
// singular form.
func ByName(name string) (Endpoint, bool) {
	for _, ep := range Endpoints {
		if name == ep.Name || name == ep.Singular {
			return ep, true
		}
	}
	return Endpoint{}, false
}

// EndpointNames returns the plural names of all endpoints, for error
// messages and command help.
func EndpointNames() string {
	names := make([]string, len(Endpoints))
	for i, ep := range Endpoints {
		names[i] = ep.Name
	}
	return strings.Join(names, ", ")
}

// ErrUnknownEndpoint builds the user-facing error for a bad endpoint
// argument.
func ErrUnknownEndpoint(name string) error {
	return fmt.Errorf("unknown endpoint %q (available: %s)", name, EndpointNames())
}
