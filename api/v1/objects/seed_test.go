package objects

import (
	"encoding/json"
	"testing"

	"github.com/kenlhlui/go-archiveit/pkg/schema"
	"github.com/kenlhlui/go-archiveit/test"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func wireSeed() map[string]any {
	return map[string]any{
		"id":                 json.Number("2467281"),
		"url":                "http://example.com/",
		"canonical_url":      "example.com/",
		"collection":         json.Number("15520"),
		"crawl_definition":   json.Number("31104307283"),
		"active":             true,
		"deleted":            false,
		"last_updated_date":  "2023-05-02T20:16:59.059012Z",
		"created_by":         "jdoe",
		"created_date":       "2023-05-02T20:16:59.059043Z",
		"last_updated_by":    "jdoe",
		"publicly_visible":   true,
		"valid":              nil,
		"http_response_code": nil,
		"seed_type":          "normal",
		"login_username":     nil,
		"login_password":     nil,
		"metadata": map[string]any{
			"Title": []any{map[string]any{"value": "Example", "id": json.Number("123")}},
		},
		"seed_groups": []any{},
		"crawl_frequency": "NONE",
	}
}

func TestSeedFromValidatedResponse(t *testing.T) {
	rec, err := schema.Validate(SeedSchema, wireSeed(), "seed 2467281")
	if err != nil {
		t.Fatal(err)
	}

	seed, err := SeedFromRecord(rec)
	if err != nil {
		t.Fatal(err)
	}

	test.Diff(t, "seed should be", &Seed{
		ID:              2467281,
		URL:             "http://example.com/",
		CanonicalURL:    "example.com/",
		Collection:      15520,
		CrawlDefinition: 31104307283,
		Active:          true,
		Deleted:         false,
		LastUpdatedDate: "2023-05-02T20:16:59.059012Z",
		CreatedBy:       strPtr("jdoe"),
		CreatedDate:     strPtr("2023-05-02T20:16:59.059043Z"),
		LastUpdatedBy:   strPtr("jdoe"),
		PubliclyVisible: boolPtr(true),
		SeedType:        strPtr("normal"),
		Metadata: map[string]any{
			"Title": []any{map[string]any{"value": "Example", "id": json.Number("123")}},
		},
		SeedGroups: []any{},
		Extra: map[string]any{
			"crawl_frequency": "NONE",
		},
	}, seed)

	if seed.Valid != nil {
		t.Error("null valid should stay nil")
	}

	if seed.HTTPResponseCode != nil {
		t.Error("null http_response_code should stay nil")
	}
}

func TestSeedResponseMissingRequiredField(t *testing.T) {
	payload := wireSeed()
	delete(payload, "url")

	_, err := schema.Validate(SeedSchema, payload, "seed")
	if err == nil {
		t.Fatal("seed without url should not validate")
	}

	verr, ok := schema.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	test.Diff(t, "issue should be", schema.Issues{
		{Path: "/url", Code: schema.CodeRequired, Message: "field is required"},
	}, verr.Issues)
}

func TestSeedResponseNullForbidden(t *testing.T) {
	payload := wireSeed()
	payload["active"] = nil

	_, err := schema.Validate(SeedSchema, payload, "seed")
	if err == nil {
		t.Fatal("null active should not validate")
	}
}

func TestSeedOptionalResponseCode(t *testing.T) {
	payload := wireSeed()
	payload["last_checked_http_response_code"] = json.Number("200")

	rec, err := schema.Validate(SeedSchema, payload, "seed")
	if err != nil {
		t.Fatal(err)
	}

	seed, err := SeedFromRecord(rec)
	if err != nil {
		t.Fatal(err)
	}

	test.Diff(t, "last checked code should be", intPtr(200), seed.LastCheckedHTTPResponseCode)
}

func TestSeedsFromRecords(t *testing.T) {
	rec, err := schema.Validate(SeedSchema, wireSeed(), "seed")
	if err != nil {
		t.Fatal(err)
	}

	seeds, err := SeedsFromRecords([]schema.Record{rec, rec})
	if err != nil {
		t.Fatal(err)
	}

	test.Diff(t, "seed count should be", 2, len(seeds))
	test.Diff(t, "ids should be", []int{2467281, 2467281}, []int{seeds[0].ID, seeds[1].ID})
}
