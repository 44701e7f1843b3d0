package objects

import (
	"github.com/kenlhlui/go-archiveit/pkg/schema"
)

// SeedSchema declares the seed resource as the service returns it.
// The schema is open: the service adds keys over time and a client
// must not choke on them. Several fields are always present but may be
// null.
var SeedSchema = schema.New("Seed", schema.Open,
	schema.Field{Name: "id", Kind: schema.Int, Required: true},
	schema.Field{Name: "url", Kind: schema.String, Required: true},
	schema.Field{Name: "canonical_url", Kind: schema.String, Required: true},
	schema.Field{Name: "collection", Kind: schema.Int, Required: true},
	schema.Field{Name: "crawl_definition", Kind: schema.Int, Required: true},
	schema.Field{Name: "active", Kind: schema.Bool, Required: true},
	schema.Field{Name: "deleted", Kind: schema.Bool, Required: true},
	schema.Field{Name: "last_updated_date", Kind: schema.String, Required: true},
	schema.Field{Name: "created_by", Kind: schema.String, Required: true, Nullable: true},
	schema.Field{Name: "created_date", Kind: schema.String, Required: true, Nullable: true},
	schema.Field{Name: "last_updated_by", Kind: schema.String, Required: true, Nullable: true},
	schema.Field{Name: "publicly_visible", Kind: schema.Bool, Required: true, Nullable: true},
	schema.Field{Name: "valid", Kind: schema.Bool, Required: true, Nullable: true},
	schema.Field{Name: "http_response_code", Kind: schema.Int, Required: true, Nullable: true},
	schema.Field{Name: "last_checked_http_response_code", Kind: schema.Int, Nullable: true},
	schema.Field{Name: "seed_type", Kind: schema.String, Required: true, Nullable: true},
	schema.Field{Name: "login_username", Kind: schema.String, Required: true, Nullable: true},
	schema.Field{Name: "login_password", Kind: schema.String, Required: true, Nullable: true},
	schema.Field{Name: "metadata", Kind: schema.Map, Required: true, Nullable: true},
	schema.Field{Name: "seed_groups", Kind: schema.List, Required: true, Nullable: true},
)

// SeedCreateSchema declares the create payload. Closed: anything
// beyond these three fields travels as other params, never through the
// validated payload.
var SeedCreateSchema = schema.New("SeedCreate", schema.Closed,
	schema.Field{Name: "url", Kind: schema.String, Required: true},
	schema.Field{Name: "collection", Kind: schema.ID, Required: true},
	schema.Field{Name: "crawl_definition", Kind: schema.ID, Required: true},
)

// MetadataValueSchema declares one metadata value. Closed and strict:
// a boolean value would otherwise slip through as a number on the
// service side.
var MetadataValueSchema = schema.New("MetadataValue", schema.Closed,
	schema.Field{Name: "value", Kind: schema.Scalar, Required: true},
	schema.Field{Name: "id", Kind: schema.String, Nullable: true},
)

// SeedUpdateSchema declares the patch payload. Both fields are
// optional; an empty update is valid and patches nothing.
var SeedUpdateSchema = schema.New("SeedUpdate", schema.Closed,
	schema.Field{Name: "metadata", Kind: schema.MultiMap, Elem: MetadataValueSchema},
	schema.Field{Name: "deleted", Kind: schema.Bool},
)

// AccountSchema declares the auth endpoint's body. Open, the client
// only cares that an id is present.
var AccountSchema = schema.New("Account", schema.Open,
	schema.Field{Name: "id", Kind: schema.Int, Required: true},
	schema.Field{Name: "username", Kind: schema.String, Nullable: true},
)
