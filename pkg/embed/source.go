package embed

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Loader kinds understood by the embed. Type is an open string; these are
// the values the platform recognizes out of the box.
const (
	TypeOSM     = "osm"
	TypeTDEI    = "TDEI"
	TypeEsri    = "esri"
	TypeGeoJSON = "geojson"
)

// Map presentation modes.
const (
	MapTravel  = "travel"
	MapHeatmap = "heatmap"
	MapIndoor  = "indoor"
)

// Source describes one data layer for the map. The Source field doubles as
// the layer's value in the joined "sources" list and as the namespace prefix
// for its per-source query parameters.
//
// No validation is performed: an esri source without a URL serializes as
// given.
type Source struct {
	// Source is the layer identifier or URL. Required.
	Source string `yaml:"source"`
	// Type selects the loader: osm, TDEI, esri, geojson, or any string the
	// platform accepts.
	Type string `yaml:"type,omitempty"`
	// MapType selects the presentation: travel, heatmap, or indoor.
	MapType string `yaml:"mapType,omitempty"`
	// Name is a display name for the layer.
	Name string `yaml:"name,omitempty"`
	// URL points at the backing service. Expected when Type is esri.
	URL string `yaml:"url,omitempty"`
	// Rules is a path to a rules resource for the layer.
	Rules string `yaml:"rules,omitempty"`
	// AdditionalParams are extra per-source settings, namespaced like the
	// fixed fields.
	AdditionalParams Params `yaml:"additionalParams,omitempty"`
}

// Named creates a source with only the identifier set, e.g. "osm".
func Named(name string) Source {
	return Source{Source: name}
}

// GeoJSON creates a geojson source backed by the given URL. The optional
// name is a display name.
func GeoJSON(url, name string) Source {
	return Source{Source: url, Type: TypeGeoJSON, Name: name}
}

// EsriSource is the input to Esri.
type EsriSource struct {
	Source  string
	URL     string
	Name    string
	MapType string
	Rules   string
}

// Esri creates a source backed by an ESRI feature service.
func Esri(in EsriSource) Source {
	return Source{
		Source:  in.Source,
		Type:    TypeEsri,
		URL:     in.URL,
		Name:    in.Name,
		MapType: in.MapType,
		Rules:   in.Rules,
	}
}

// Names converts bare layer names into sources, preserving order.
func Names(names ...string) []Source {
	out := make([]Source, len(names))
	for i, n := range names {
		out[i] = Named(n)
	}
	return out
}

// QueryParams returns the source's settings as namespaced parameters,
// <source>.<field> for each populated optional field plus each additional
// parameter. Absent fields are omitted entirely.
func (s Source) QueryParams() Params {
	var p Params
	set := func(field, value string) {
		if value != "" {
			p.Set(s.Source+"."+field, value)
		}
	}
	set("type", s.Type)
	set("mapType", s.MapType)
	set("name", s.Name)
	set("url", s.URL)
	set("rules", s.Rules)
	s.AdditionalParams.Each(func(k, v string) {
		p.Set(s.Source+"."+k, v)
	})
	return p
}

// clone returns a deep copy; the owning Config never aliases caller sources.
func (s Source) clone() Source {
	out := s
	out.AdditionalParams = s.AdditionalParams.Clone()
	return out
}

// UnmarshalYAML accepts either a bare name string or a full mapping, so a
// config file can mix the two:
//
//	sources:
//	  - osm
//	  - source: units
//	    type: esri
//	    url: https://example.com/FeatureServer
func (s *Source) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}
		*s = Named(name)
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("source: expected a name or a mapping, got %s", node.Tag)
	}
	type plain Source
	var out plain
	if err := node.Decode(&out); err != nil {
		return err
	}
	*s = Source(out)
	return nil
}
