package objects

import (
	"github.com/mitchellh/mapstructure"

	"github.com/kenlhlui/go-archiveit/pkg/schema"
)

// Account is the identity the auth endpoint reports for the configured
// credentials.
type Account struct {
	ID int `mapstructure:"id"`

	Username *string `mapstructure:"username"`

	Extra map[string]any `mapstructure:",remain"`
}

// AccountFromRecord builds an Account out of a validated record.
func AccountFromRecord(rec schema.Record) (*Account, error) {
	account := &Account{}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: account,
	})
	if err != nil {
		return nil, err
	}

	if err := dec.Decode(map[string]any(rec)); err != nil {
		return nil, err
	}

	return account, nil
}

// MetadataOutcome reports the metadata follow-up step of a create.
type MetadataOutcome struct {
	// Applied is true when the metadata patch went through.
	Applied bool

	// Err holds the reason when it did not.
	Err error
}

// CreateResult is a created seed plus the outcome of its metadata
// step. The two are separate because the service offers no atomic
// create-with-metadata.
type CreateResult struct {
	Seed *Seed

	Metadata MetadataOutcome
}
