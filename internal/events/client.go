// internal/events/client.go
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"mahalo-service/internal/config"
)

// Page is one page object from the hosted WordPress content API, reduced to
// the fields the normalizer consumes.
type Page struct {
	ID       int       `json:"id"`
	Title    rendered  `json:"title"`
	Content  rendered  `json:"content"`
	Embedded *embedded `json:"_embedded,omitempty"`
}

type rendered struct {
	Rendered string `json:"rendered"`
}

type embedded struct {
	FeaturedMedia []featuredMedia `json:"wp:featuredmedia"`
}

type featuredMedia struct {
	SourceURL string `json:"source_url"`
}

// FeaturedImageURL returns the source URL of the first embedded featured
// media item, or "" when the page has none.
func (p *Page) FeaturedImageURL() string {
	if p.Embedded == nil || len(p.Embedded.FeaturedMedia) == 0 {
		return ""
	}
	return p.Embedded.FeaturedMedia[0].SourceURL
}

// Client fetches pages from the public WordPress.com API for one site.
type Client struct {
	apiBase string
	site    string
	httpc   *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiBase: cfg.WPAPIBase,
		site:    cfg.WPSite,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchPages pulls the site's pages with embedded media metadata. One shot,
// no retries — callers fail open on error.
func (c *Client) FetchPages(ctx context.Context) ([]Page, error) {
	url := fmt.Sprintf("%s/wp/v2/sites/%s/pages?per_page=100&_embed", c.apiBase, c.site)
	log.Printf("🌐 [EVENTS] Fetching pages from: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("❌ [EVENTS] Content API error response: %s", string(body))
		return nil, fmt.Errorf("content api returned status: %d", resp.StatusCode)
	}

	var pages []Page
	if err := json.NewDecoder(resp.Body).Decode(&pages); err != nil {
		return nil, fmt.Errorf("decode content api response: %w", err)
	}

	log.Printf("✅ [EVENTS] Content API returned %d pages", len(pages))
	return pages, nil
}
