package objects

import (
	"github.com/mitchellh/mapstructure"

	"github.com/kenlhlui/go-archiveit/pkg/schema"
)

// SeedCreate is the payload for adding a seed to a collection.
type SeedCreate struct {
	URL string `mapstructure:"url"`

	Collection int `mapstructure:"collection"`

	CrawlDefinition int `mapstructure:"crawl_definition"`
}

// Record returns the payload as a validation-ready record.
func (c SeedCreate) Record() schema.Record {
	return schema.Record{
		"url":              c.URL,
		"collection":       c.Collection,
		"crawl_definition": c.CrawlDefinition,
	}
}

// SeedUpdate is the payload for patching a seed. Unset fields stay out
// of the request entirely.
type SeedUpdate struct {
	Metadata Metadata

	Deleted *bool
}

func (u SeedUpdate) Record() schema.Record {
	rec := schema.Record{}

	if u.Metadata != nil {
		rec["metadata"] = u.Metadata.Record()
	}

	if u.Deleted != nil {
		rec["deleted"] = *u.Deleted
	}

	return rec
}

// MetadataValue is one value of a multi-valued metadata field. Value
// must be a string or a number; the service treats booleans in
// metadata as malformed.
type MetadataValue struct {
	Value any `mapstructure:"value"`

	ID string `mapstructure:"id,omitempty"`
}

// Metadata maps a metadata field name, "Title" for example, to its
// ordered values.
type Metadata map[string][]MetadataValue

// Record returns the metadata as a validation-ready record.
func (m Metadata) Record() map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m))

	for field, values := range m {
		vals := make([]any, 0, len(values))

		for _, v := range values {
			value := map[string]any{
				"value": v.Value,
			}
			if v.ID != "" {
				value["id"] = v.ID
			}

			vals = append(vals, value)
		}

		out[field] = vals
	}

	return out
}

// Merge overlays other onto m field by field. Fields present in both
// keep m's values.
func (m Metadata) Merge(other Metadata) Metadata {
	if m == nil && other == nil {
		return nil
	}

	out := make(Metadata, len(m)+len(other))

	for field, values := range other {
		out[field] = values
	}

	for field, values := range m {
		out[field] = values
	}

	return out
}

// MetadataFromValue shapes a loosely typed metadata payload, for
// example the "metadata" entry of other params, into Metadata.
func MetadataFromValue(v any) (Metadata, error) {
	if v == nil {
		return nil, nil
	}

	if md, ok := v.(Metadata); ok {
		return md, nil
	}

	var md Metadata
	if err := mapstructure.Decode(v, &md); err != nil {
		return nil, err
	}

	return md, nil
}
