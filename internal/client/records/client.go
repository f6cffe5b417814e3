package records

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	meili "github.com/meilisearch/meilisearch-go"

	"github.com/s21platform/staff-chat-service/internal/config"
	"github.com/s21platform/staff-chat-service/internal/model"
)

const searchLimit = 10

// Client looks business records up in the Meilisearch index that backs mentions.
type Client struct {
	index meili.IndexManager
}

func New(cfg *config.Config) *Client {
	client := meili.New(cfg.Records.URL, meili.WithAPIKey(cfg.Records.APIKey))
	return &Client{index: client.Index(cfg.Records.Index)}
}

func (c *Client) Search(ctx context.Context, query string) ([]model.RecordRef, error) {
	resp, err := c.index.SearchWithContext(ctx, query, &meili.SearchRequest{
		Limit:                searchLimit,
		AttributesToRetrieve: []string{"id", "label"},
	})
	if err != nil {
		return nil, fmt.Errorf("meilisearch search: %w", err)
	}

	refs := make([]model.RecordRef, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		ref, ok := hitToRef(hit)
		if !ok {
			continue
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// hitToRef accepts string or numeric primary keys; hits without a label are dropped.
func hitToRef(hit meili.Hit) (model.RecordRef, bool) {
	id := decodeID(hit["id"])
	label := strings.TrimSpace(decodeString(hit["label"]))
	if id == "" || label == "" {
		return model.RecordRef{}, false
	}
	return model.RecordRef{ID: id, Label: label}, true
}

func decodeID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	if s := decodeString(raw); s != "" {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		return n.String()
	}
	return ""
}

func decodeString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
