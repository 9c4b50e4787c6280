// Package community searches the public n8n template library and adapts the
// results for the consulting pipeline: Chinese keywords are translated to an
// English search query, fetched workflows are translated back, and each gets
// a difficulty assessment and setup steps derived from its node structure.
// The pipeline is complete without any of this; every failure here degrades
// to an empty result set with a logged warning.
package community

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/yhlin/n8n-consultant/models"
)

const (
	requestTimeout = 8 * time.Second
	userAgent      = "n8n-consultant/1.0"
	searchRows     = 8
)

type Client struct {
	base   string
	client *http.Client
	cache  *Cache
	log    *slog.Logger
}

// NewClient builds a template API client. cache may be nil to disable
// response caching.
func NewClient(base string, cache *Cache, log *slog.Logger) *Client {
	return &Client{
		base:   base,
		client: &http.Client{Timeout: requestTimeout},
		cache:  cache,
		log:    log,
	}
}

// workflowSummary is one search hit.
type workflowSummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	TotalViews int    `json:"totalViews"`
	User       struct {
		Username string `json:"username"`
	} `json:"user"`
}

type searchResponse struct {
	Workflows []workflowSummary `json:"workflows"`
}

// workflowDetail is the attribute payload of one workflow record.
type workflowDetail struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Workflow    struct {
		Nodes []detailNode `json:"nodes"`
	} `json:"workflow"`
}

type detailNode struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Parameters struct {
		URL string `json:"url"`
	} `json:"parameters"`
}

type detailResponse struct {
	Data struct {
		Attributes workflowDetail `json:"attributes"`
	} `json:"data"`
}

func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(requestURL); ok {
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.Set(requestURL, body); err != nil {
			c.log.Warn("community cache write failed", "error", err)
		}
	}
	return body, nil
}

// Search queries the template library and returns raw hits.
func (c *Client) Search(ctx context.Context, query string, rows int) ([]workflowSummary, error) {
	params := url.Values{}
	params.Set("search", query)
	params.Set("rows", fmt.Sprint(rows))
	params.Set("page", "1")

	body, err := c.get(ctx, c.base+"/templates/search?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("template search: %w", err)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("template search: parse response: %w", err)
	}
	return parsed.Workflows, nil
}

// Detail fetches the full record of one workflow.
func (c *Client) Detail(ctx context.Context, id int64) (*workflowDetail, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/workflows/%d", c.base, id))
	if err != nil {
		return nil, fmt.Errorf("workflow detail %d: %w", id, err)
	}

	var parsed detailResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("workflow detail %d: parse response: %w", id, err)
	}
	return &parsed.Data.Attributes, nil
}

// SearchAndEnrich runs the widening search rounds, dedupes hits, fetches
// details for the most viewed templates and enriches each. Errors never
// propagate; the result is simply shorter.
func (c *Client) SearchAndEnrich(ctx context.Context, keywords []string, industry string, maxResults int) []models.CommunityWorkflow {
	seen := make(map[int64]struct{})
	var hits []workflowSummary

	collect := func(query, label string) {
		c.log.Debug("community search", "round", label, "query", query)
		found, err := c.Search(ctx, query, searchRows)
		if err != nil {
			c.log.Warn("community search failed", "round", label, "error", err)
			return
		}
		for _, wf := range found {
			if wf.ID == 0 {
				continue
			}
			if _, dup := seen[wf.ID]; dup {
				continue
			}
			seen[wf.ID] = struct{}{}
			hits = append(hits, wf)
		}
	}

	collect(TranslateKeywords(keywords, industry), "full")
	if len(hits) < maxResults && len(keywords) >= 2 {
		collect(TranslateKeywords(keywords[:2], industry), "industry+action")
	}
	if len(hits) < 3 && industry != "" {
		industryEN := industry
		if en, ok := zhToEN[industry]; ok {
			industryEN = en
		}
		collect(industryEN+" workflow automation", "industry")
	}
	if len(hits) < 3 {
		for _, kw := range keywords {
			if en, ok := zhToEN[kw]; ok {
				collect(en, "fallback")
			}
			if len(hits) >= maxResults {
				break
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].TotalViews > hits[j].TotalViews
	})
	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}

	var results []models.CommunityWorkflow
	for _, hit := range hits {
		detail, err := c.Detail(ctx, hit.ID)
		if err != nil {
			c.log.Warn("community detail fetch failed", "id", hit.ID, "error", err)
			continue
		}
		results = append(results, Enrich(detail, hit.ID))
	}
	return results
}
