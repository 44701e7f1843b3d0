package objects

import (
	"github.com/mitchellh/mapstructure"

	"github.com/kenlhlui/go-archiveit/pkg/schema"
)

// Seed is one seed as the service reports it. Fields the service may
// send as null are pointers so a null never collapses into a zero
// value.
type Seed struct {
	ID int `mapstructure:"id"`

	// URL is the address the crawler starts from.
	URL string `mapstructure:"url"`

	CanonicalURL string `mapstructure:"canonical_url"`

	Collection int `mapstructure:"collection"`

	CrawlDefinition int `mapstructure:"crawl_definition"`

	Active bool `mapstructure:"active"`

	// Deleted marks a soft-deleted seed. The service never removes the
	// record itself.
	Deleted bool `mapstructure:"deleted"`

	LastUpdatedDate string `mapstructure:"last_updated_date"`

	CreatedBy *string `mapstructure:"created_by"`

	CreatedDate *string `mapstructure:"created_date"`

	LastUpdatedBy *string `mapstructure:"last_updated_by"`

	PubliclyVisible *bool `mapstructure:"publicly_visible"`

	Valid *bool `mapstructure:"valid"`

	HTTPResponseCode *int `mapstructure:"http_response_code"`

	LastCheckedHTTPResponseCode *int `mapstructure:"last_checked_http_response_code"`

	SeedType *string `mapstructure:"seed_type"`

	LoginUsername *string `mapstructure:"login_username"`

	LoginPassword *string `mapstructure:"login_password"`

	// Metadata holds the descriptive fields of the seed as the service
	// returns them. Nil when the service sent null.
	Metadata map[string]any `mapstructure:"metadata"`

	SeedGroups []any `mapstructure:"seed_groups"`

	// Extra keeps response keys the seed schema does not declare.
	Extra map[string]any `mapstructure:",remain"`
}

// SeedFromRecord builds a Seed out of a validated record.
func SeedFromRecord(rec schema.Record) (*Seed, error) {
	seed := &Seed{}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: seed,
	})
	if err != nil {
		return nil, err
	}

	if err := dec.Decode(map[string]any(rec)); err != nil {
		return nil, err
	}

	return seed, nil
}

func SeedsFromRecords(recs []schema.Record) ([]*Seed, error) {
	seeds := make([]*Seed, 0, len(recs))

	for _, rec := range recs {
		seed, err := SeedFromRecord(rec)
		if err != nil {
			return nil, err
		}

		seeds = append(seeds, seed)
	}

	return seeds, nil
}
