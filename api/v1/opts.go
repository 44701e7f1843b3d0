package v1

import (
	"github.com/kenlhlui/go-archiveit/api/v1/objects"
)

const (
	// DefaultListLimit asks the service for every seed.
	DefaultListLimit = -1

	DefaultListFormat = "json"
)

// ListOptions controls a seed listing.
type ListOptions struct {
	Limit  int
	Format string
	Sort   string
}

type ListOption func(*ListOptions)

func NewListOptions(opts ...ListOption) *ListOptions {
	o := &ListOptions{
		Limit:  DefaultListLimit,
		Format: DefaultListFormat,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

func WithLimit(limit int) ListOption {
	return func(o *ListOptions) {
		o.Limit = limit
	}
}

// WithSort orders the listing by a seed field. Prefix the field with
// "-" for descending order.
func WithSort(field string) ListOption {
	return func(o *ListOptions) {
		o.Sort = field
	}
}

// WithFormat asks the service for another response format. Only "json"
// responses can be decoded into seeds.
func WithFormat(format string) ListOption {
	return func(o *ListOptions) {
		o.Format = format
	}
}

// CreateOptions carries the optional parts of a seed creation.
type CreateOptions struct {
	OtherParams map[string]any
	Metadata    objects.Metadata
}

type CreateOption func(*CreateOptions)

func NewCreateOptions(opts ...CreateOption) *CreateOptions {
	o := &CreateOptions{}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithOtherParams adds extra form fields to the create request. A
// "metadata" entry is pulled out and patched onto the seed after
// creation instead of being sent with the form.
func WithOtherParams(params map[string]any) CreateOption {
	return func(o *CreateOptions) {
		o.OtherParams = params
	}
}

// WithMetadata sets metadata for the created seed. Fields given here
// win over a "metadata" entry inside other params.
func WithMetadata(metadata objects.Metadata) CreateOption {
	return func(o *CreateOptions) {
		o.Metadata = metadata
	}
}
