package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gschema "github.com/gorilla/schema"

	v1 "github.com/kenlhlui/go-archiveit/api/v1"
	"github.com/kenlhlui/go-archiveit/api/v1/objects"
	"github.com/kenlhlui/go-archiveit/pkg/schema"
	"github.com/kenlhlui/go-archiveit/pkg/transport"
)

var queryEncoder = gschema.NewEncoder()

// seedQuery is the wire form of a seed listing request.
type seedQuery struct {
	Collection int    `schema:"collection"`
	Limit      int    `schema:"limit"`
	Format     string `schema:"format"`
	Sort       string `schema:"sort,omitempty"`
}

type httpSeed struct {
	client *httpClient
}

func (s *httpSeed) List(ctx context.Context, collectionIDs []int, opts ...v1.ListOption) ([]*objects.Seed, error) {
	opt := v1.NewListOptions(opts...)

	if opt.Sort != "" {
		field := strings.TrimLeft(opt.Sort, "-")
		if !objects.SeedSchema.HasField(field) {
			return nil, fmt.Errorf("%w: %q", v1.ErrInvalidSortField, field)
		}
	}

	records := make([]schema.Record, 0)

	for _, collectionID := range collectionIDs {
		query := url.Values{}

		err := queryEncoder.Encode(&seedQuery{
			Collection: collectionID,
			Limit:      opt.Limit,
			Format:     opt.Format,
			Sort:       opt.Sort,
		}, query)
		if err != nil {
			return nil, err
		}

		resp, err := s.client.transport.Request(ctx, http.MethodGet, "seed", transport.WithQuery(query))
		if err != nil {
			return nil, err
		}

		body, err := resp.Decode()
		if err != nil {
			return nil, err
		}

		list, ok := body.([]any)
		if !ok {
			s.client.log.WithField("collection", collectionID).Warn("seed listing is not a list, skipping collection")

			continue
		}

		for _, el := range list {
			rec, err := schema.Validate(objects.SeedSchema, el, fmt.Sprintf("collection %d", collectionID))
			if err != nil {
				return nil, err
			}

			records = append(records, rec)
		}
	}

	// the assembled set is checked once more as a unit before decoding
	raw := make([]any, len(records))
	for i, rec := range records {
		raw[i] = rec
	}

	validated, err := schema.ValidateList(objects.SeedSchema, raw, "all seeds", "api")
	if err != nil {
		return nil, err
	}

	return objects.SeedsFromRecords(validated)
}

func (s *httpSeed) Create(ctx context.Context, seedURL string, collectionID, crawlDefinitionID int, opts ...v1.CreateOption) (*objects.CreateResult, error) {
	opt := v1.NewCreateOptions(opts...)

	otherParams := make(map[string]any, len(opt.OtherParams))
	for k, v := range opt.OtherParams {
		otherParams[k] = v
	}

	popped, err := objects.MetadataFromValue(otherParams["metadata"])
	if err != nil {
		return nil, fmt.Errorf("metadata inside other params: %w", err)
	}
	delete(otherParams, "metadata")

	metadata := opt.Metadata.Merge(popped)

	create := objects.SeedCreate{
		URL:             seedURL,
		Collection:      collectionID,
		CrawlDefinition: crawlDefinitionID,
	}

	rec, err := schema.Validate(objects.SeedCreateSchema, create.Record(), fmt.Sprintf("new seed in collection %d", collectionID))
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	for k, v := range rec {
		form.Set(k, fmt.Sprint(v))
	}
	for k, v := range otherParams {
		form.Set(k, fmt.Sprint(v))
	}

	resp, err := s.client.transport.Request(ctx, http.MethodPost, "seed", transport.WithForm(form))
	if err != nil {
		return nil, err
	}

	body, err := resp.Decode()
	if err != nil {
		return nil, err
	}

	seedData, _ := body.(map[string]any)

	var outcome objects.MetadataOutcome

	if len(metadata) > 0 {
		id, ok := seedID(seedData)

		switch {
		case !ok:
			s.client.log.WithField("collection", collectionID).Warn("create response carries no seed id, metadata not applied")

			outcome.Err = fmt.Errorf("create response carries no seed id")
		default:
			if _, err := s.UpdateMetadata(ctx, id, metadata); err != nil {
				s.client.log.WithField("seed", id).WithError(err).Warn("metadata could not be applied to the created seed")

				outcome.Err = err
			} else {
				outcome.Applied = true

				// the create body never echoes metadata back on its own
				seedData["metadata"] = metadata.Record()
			}
		}
	}

	final, err := schema.Validate(objects.SeedSchema, body, fmt.Sprintf("created seed in collection %d", collectionID))
	if err != nil {
		return nil, err
	}

	seed, err := objects.SeedFromRecord(final)
	if err != nil {
		return nil, err
	}

	return &objects.CreateResult{
		Seed:     seed,
		Metadata: outcome,
	}, nil
}

func (s *httpSeed) UpdateMetadata(ctx context.Context, seedID int, metadata objects.Metadata) (map[string]any, error) {
	update := objects.SeedUpdate{Metadata: metadata}

	rec, err := schema.Validate(objects.SeedUpdateSchema, update.Record(), fmt.Sprintf("update of seed %d", seedID))
	if err != nil {
		return nil, err
	}

	resp, err := s.client.transport.Request(ctx, http.MethodPatch, fmt.Sprintf("seed/%d", seedID), transport.WithJSON(rec))
	if err != nil {
		return nil, err
	}

	// deliberately raw: metadata patch responses vary too much to pin
	// down with the seed schema
	body := map[string]any{}
	if err := resp.JSON(&body); err != nil {
		return nil, err
	}

	return body, nil
}

func (s *httpSeed) Delete(ctx context.Context, seedID int) (*objects.Seed, error) {
	deleted := true
	update := objects.SeedUpdate{Deleted: &deleted}

	resp, err := s.client.transport.Request(ctx, http.MethodPatch, fmt.Sprintf("seed/%d", seedID), transport.WithJSON(update.Record()))
	if err != nil {
		return nil, err
	}

	body, err := resp.Decode()
	if err != nil {
		return nil, err
	}

	final, err := schema.Validate(objects.SeedSchema, body, fmt.Sprintf("deleted seed %d", seedID))
	if err != nil {
		return nil, err
	}

	return objects.SeedFromRecord(final)
}

func seedID(data map[string]any) (int, bool) {
	if data == nil {
		return 0, false
	}

	num, ok := data["id"].(json.Number)
	if !ok {
		return 0, false
	}

	id, err := num.Int64()
	if err != nil {
		return 0, false
	}

	return int(id), true
}
