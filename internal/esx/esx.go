// Package esx maintains an optional audit index of fingerprint observations.
package esx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"forum-fingerprint-api/internal/config"

	es8 "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/samber/lo"
)

type Client = es8.Client

// ObservationIndex is the index receiving fingerprint observation docs.
const ObservationIndex = "fingerprint-observations"

func Open(cfg *config.Config) (*Client, func(), error) {
	if strings.TrimSpace(cfg.ES.Addrs) == "" {
		return nil, func() {}, nil
	}
	raw := strings.Split(cfg.ES.Addrs, ",")
	addrs := lo.FilterMap(raw, func(s string, _ int) (string, bool) {
		t := strings.TrimSpace(s)
		return t, t != ""
	})
	es, err := es8.NewClient(es8.Config{Addresses: addrs, Username: cfg.ES.Username, Password: cfg.ES.Password})
	if err != nil {
		return nil, func() {}, err
	}
	return es, func() {}, nil
}

// ObservationDoc is one fingerprint observation as indexed for audit search.
type ObservationDoc struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	SeenAt   string `json:"seen_at"`
}

// IndexObservation indexes one observation, keyed by (user, name, value) so
// repeated touches overwrite rather than accumulate.
func IndexObservation(ctx context.Context, es *Client, doc ObservationDoc) error {
	if es == nil {
		return nil
	}
	b, _ := json.Marshal(doc)
	docID := fmt.Sprintf("%d:%s:%s", doc.UserID, doc.Name, doc.Value)
	res, err := es.Index(ObservationIndex, bytes.NewReader(b),
		es.Index.WithDocumentID(docID),
		es.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return fmtError(res)
	}
	return nil
}

// SearchObservations runs a multi-field query over indexed observations.
func SearchObservations(ctx context.Context, es *Client, query string, from, size int) (map[string]any, error) {
	if es == nil {
		return map[string]any{"hits": []any{}}, nil
	}
	q := map[string]any{"query": map[string]any{"multi_match": map[string]any{
		"query":  query,
		"fields": []string{"value^2", "username", "name"},
	}}}
	b, _ := json.Marshal(q)
	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(ObservationIndex),
		es.Search.WithBody(bytes.NewReader(b)),
		es.Search.WithFrom(from),
		es.Search.WithSize(size),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return nil, fmtError(res)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	return out, nil
}

func fmtError(res *esapi.Response) error { return fmt.Errorf("es error: %s", res.String()) }
