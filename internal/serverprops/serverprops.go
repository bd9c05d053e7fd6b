// Package serverprops supplies the properties a SonarQube server holds for a
// project. Fetching them over the network is the job of a separate client;
// this package defines the seam and the offline providers.
package serverprops

import (
	"context"

	"github.com/dkoosis/sqboot/pkg/property"
)

// Provider returns server-side analysis properties keyed by id.
type Provider interface {
	Properties(ctx context.Context) (map[string]string, error)
}

// Static serves a fixed set of properties.
type Static map[string]string

// Properties implements Provider. The returned map is a copy.
func (s Static) Properties(context.Context) (map[string]string, error) {
	out := make(map[string]string, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out, nil
}

// File reads properties from a property file (XML or YAML). When an id
// occurs more than once the last value wins.
type File struct {
	Path string
}

// Properties implements Provider.
func (f File) Properties(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	list, err := property.Load(f.Path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(list))
	for _, p := range list {
		out[p.ID] = p.Value
	}
	return out, nil
}
