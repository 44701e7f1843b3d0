// Package v1 defines the client surface of the partner API: the
// resource interfaces, their options and the error types callers
// branch on.
package v1

import (
	"context"

	"github.com/kenlhlui/go-archiveit/api/v1/objects"
	"github.com/kenlhlui/go-archiveit/pkg/transport"
)

// V1Seed manages seeds, the URLs a collection starts its crawls from.
type V1Seed interface {
	// List fetches the seeds of every given collection, one request per
	// collection, in input order.
	List(ctx context.Context, collectionIDs []int, opts ...ListOption) ([]*objects.Seed, error)

	// Create adds a seed to a collection and, when metadata was given,
	// patches it onto the new seed as a follow-up step. The result
	// reports the follow-up outcome separately since the service offers
	// no way to do both atomically.
	Create(ctx context.Context, seedURL string, collectionID, crawlDefinitionID int, opts ...CreateOption) (*objects.CreateResult, error)

	// UpdateMetadata replaces the metadata of a seed. The response comes
	// back as the raw decoded body.
	UpdateMetadata(ctx context.Context, seedID int, metadata objects.Metadata) (map[string]any, error)

	// Delete soft-deletes a seed and returns its final state.
	Delete(ctx context.Context, seedID int) (*objects.Seed, error)
}

type V1 interface {
	Seed() V1Seed

	// Account reports the identity the client authenticated as.
	Account() *objects.Account

	// Do sends a raw request to an endpoint under the API base URL.
	Do(ctx context.Context, method, endpoint string, opts ...transport.RequestOption) (*transport.Response, error)

	Close() error
}
