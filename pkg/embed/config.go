// Package embed builds Audiom embed URLs. A Config aggregates every
// embeddable parameter — API key, data sources, location, display flags,
// step size, arbitrary extras — and serializes it into the canonical query
// string the embed endpoint expects.
package embed

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/audiom/embed-go/pkg/stepsize"
)

// DynamicEmbedID is the sentinel identifier for dynamic mode, where the
// whole configuration travels in the query string instead of being stored
// server-side under a numeric ID.
const DynamicEmbedID = "dynamic"

// DefaultBaseURL is the staging origin used by URL when no base is given.
const DefaultBaseURL = "https://staging.audiom.net"

// Options carries the optional configuration for New, Dynamic, and Static.
//
// Optional numerics and booleans are pointers so that zero and false count
// as set: Zoom of 0 and Demo of false are emitted when their pointers are
// non-nil. Soundpack and Title are plain strings whose empty value means
// absent; the endpoint treats an empty string for these two as unset.
type Options struct {
	APIKey  string
	Sources []Source

	// Center is the [longitude, latitude] map center. orb.Point is
	// longitude-first, matching the wire format.
	Center *orb.Point

	// Latitude and Longitude are a discrete fallback used only when Center
	// is absent. Either, neither, or both may be set.
	Latitude  *float64
	Longitude *float64

	Zoom          *float64
	Soundpack     string
	Demo          *bool
	Title         string
	ShowVisualMap *bool
	// Heading must be in 1..6. This is an input contract, not enforced.
	Heading     *int
	ShowHeading *bool

	// StepSize is a parsed step size. StepSizeText is the raw-string
	// alternative, parsed via stepsize.Parse at construction; a malformed
	// string surfaces that parse error from the constructor. StepSize wins
	// when both are set.
	StepSize     *stepsize.StepSize
	StepSizeText string

	// AdditionalParams are merged into the query string last and may
	// override any key set by the typed fields.
	AdditionalParams Params
}

// Config is an immutable embed configuration. Build one with New, Dynamic,
// or Static; it exclusively owns its sources and step size.
type Config struct {
	embedID string
	apiKey  string
	opts    Options
}

// New creates a Config with an explicit embed identifier. A non-empty
// apiKey and embedID are the caller's responsibility; they are copied as-is.
func New(embedID, apiKey string, opts Options) (*Config, error) {
	opts.APIKey = apiKey
	if opts.StepSize == nil && opts.StepSizeText != "" {
		ss, err := stepsize.Parse(opts.StepSizeText)
		if err != nil {
			return nil, err
		}
		opts.StepSize = &ss
	} else if opts.StepSize != nil {
		ss := *opts.StepSize
		opts.StepSize = &ss
	}

	sources := make([]Source, len(opts.Sources))
	for i, s := range opts.Sources {
		sources[i] = s.clone()
	}
	opts.Sources = sources
	opts.AdditionalParams = opts.AdditionalParams.Clone()

	return &Config{embedID: embedID, apiKey: apiKey, opts: opts}, nil
}

// Dynamic creates a dynamic-mode Config: the embed identifier is the
// dynamic sentinel and everything else travels in the query string.
func Dynamic(opts Options) (*Config, error) {
	return New(DynamicEmbedID, opts.APIKey, opts)
}

// Static creates a Config addressed by a pre-registered identifier.
// Numeric identifiers are passed in decimal string form, e.g. "12345".
func Static(embedID, apiKey string, extra ...Options) (*Config, error) {
	var opts Options
	if len(extra) > 0 {
		opts = extra[0]
	}
	return New(embedID, apiKey, opts)
}

// EmbedID returns the embed identifier.
func (c *Config) EmbedID() string { return c.embedID }

// APIKey returns the API key.
func (c *Config) APIKey() string { return c.apiKey }

// StepSize returns the step size, or nil when unset.
func (c *Config) StepSize() *stepsize.StepSize { return c.opts.StepSize }

// QueryParams builds the query parameters in their canonical order:
// apiKey, the joined sources list plus each source's namespaced settings,
// location, display fields, step size, then AdditionalParams. Later entries
// overwrite earlier ones of the same name; AdditionalParams can override
// anything.
func (c *Config) QueryParams() Params {
	var p Params
	p.Set("apiKey", c.apiKey)

	if len(c.opts.Sources) > 0 {
		names := make([]string, len(c.opts.Sources))
		for i, s := range c.opts.Sources {
			names[i] = s.Source
		}
		p.Set("sources", strings.Join(names, ","))
		for _, s := range c.opts.Sources {
			p.Merge(s.QueryParams())
		}
	}

	if c.opts.Center != nil {
		p.Set("center", formatFloat(c.opts.Center.Lon())+","+formatFloat(c.opts.Center.Lat()))
	} else {
		if c.opts.Latitude != nil {
			p.Set("latitude", formatFloat(*c.opts.Latitude))
		}
		if c.opts.Longitude != nil {
			p.Set("longitude", formatFloat(*c.opts.Longitude))
		}
	}

	if c.opts.Zoom != nil {
		p.Set("zoom", formatFloat(*c.opts.Zoom))
	}
	if c.opts.Soundpack != "" {
		p.Set("soundpack", c.opts.Soundpack)
	}
	if c.opts.Demo != nil {
		p.Set("demo", strconv.FormatBool(*c.opts.Demo))
	}
	if c.opts.Title != "" {
		p.Set("title", c.opts.Title)
	}
	if c.opts.ShowVisualMap != nil {
		p.Set("showVisualMap", strconv.FormatBool(*c.opts.ShowVisualMap))
	}
	if c.opts.Heading != nil {
		p.Set("heading", strconv.Itoa(*c.opts.Heading))
	}
	if c.opts.ShowHeading != nil {
		p.Set("showHeading", strconv.FormatBool(*c.opts.ShowHeading))
	}
	if c.opts.StepSize != nil {
		p.Set("stepsize", c.opts.StepSize.String())
	}

	p.Merge(c.opts.AdditionalParams)
	return p
}

// URL builds the full embed URL against the default staging origin.
func (c *Config) URL() string {
	return c.URLWithBase(DefaultBaseURL)
}

// URLWithBase builds <base>/embed/<embedID>?k=v&... with the parameters in
// QueryParams order. No percent-encoding is applied to keys or values; the
// endpoint reads commas and slashes literally, so callers must supply
// URL-safe values.
func (c *Config) URLWithBase(base string) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString("/embed/")
	b.WriteString(c.embedID)
	b.WriteByte('?')
	first := true
	params := c.QueryParams()
	params.Each(func(k, v string) {
		if !first {
			b.WriteByte('&')
		}
		first = false
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v)
	})
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
