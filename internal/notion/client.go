package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperr "notion-agent/internal/errors"
)

const apiVersion = "2022-06-28"

// Client performs direct calls against the Notion REST API.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Notion API client. The endpoint defaults to the
// public API when empty; timeout bounds every outbound call.
func NewClient(token, endpoint string, timeout time.Duration) (*Client, error) {
	if token == "" {
		return nil, apperr.NewAuth("notion token is required")
	}
	if endpoint == "" {
		endpoint = "https://api.notion.com/v1"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		token:      token,
		baseURL:    strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Page describes a page as returned by create and search calls.
type Page struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	url := c.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.WrapUpstream(err, "notion request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.WrapUpstream(err, "failed to read notion response")
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, apperr.NewAuth("notion rejected credentials (%d): %s", resp.StatusCode, string(respBody))
	case resp.StatusCode >= 400:
		return nil, apperr.NewUpstream(resp.StatusCode, "notion API error %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// CreatePage creates a page with the given title under the parent page.
// The title is sent verbatim.
func (c *Client) CreatePage(ctx context.Context, title, parentPageID string) (Page, error) {
	if strings.TrimSpace(title) == "" {
		return Page{}, apperr.NewInput("page title must not be empty")
	}
	if parentPageID == "" {
		return Page{}, apperr.NewInput("parent page id is required")
	}

	pageData := map[string]interface{}{
		"parent": map[string]interface{}{
			"type":    "page_id",
			"page_id": parentPageID,
		},
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"title": []map[string]interface{}{
					{
						"text": map[string]interface{}{
							"content": title,
						},
					},
				},
			},
		},
	}

	respBody, err := c.doRequest(ctx, http.MethodPost, "/pages", pageData)
	if err != nil {
		return Page{}, err
	}

	var result struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return Page{}, apperr.WrapUpstream(err, "failed to parse create page response")
	}
	if result.ID == "" {
		return Page{}, apperr.NewUpstream(0, "no page ID in create page response")
	}

	return Page{ID: result.ID, Title: title, URL: result.URL}, nil
}

// AppendBlocks appends the rendered blocks as children of the target page.
func (c *Client) AppendBlocks(ctx context.Context, pageID string, blocks []Block) error {
	if pageID == "" {
		return apperr.NewInput("target page id is required")
	}
	if len(blocks) == 0 {
		return apperr.NewInput("no blocks to append")
	}

	children := make([]map[string]interface{}, 0, len(blocks))
	for _, b := range blocks {
		children = append(children, b.Render())
	}

	endpoint := fmt.Sprintf("/blocks/%s/children", pageID)
	_, err := c.doRequest(ctx, http.MethodPatch, endpoint, map[string]interface{}{"children": children})
	return err
}

// Search finds pages matching the query and returns their ID, title and URL.
func (c *Client) Search(ctx context.Context, query string, pageSize int) ([]Page, error) {
	if pageSize <= 0 {
		pageSize = 20
	}

	respBody, err := c.doRequest(ctx, http.MethodPost, "/search", map[string]interface{}{
		"query":     query,
		"page_size": pageSize,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, apperr.WrapUpstream(err, "failed to parse search response")
	}

	var pages []Page
	for _, raw := range result.Results {
		var page map[string]interface{}
		if err := json.Unmarshal(raw, &page); err != nil {
			continue
		}
		id, ok := page["id"].(string)
		if !ok {
			continue
		}
		url, _ := page["url"].(string)
		pages = append(pages, Page{ID: id, Title: pageTitle(page), URL: url})
	}
	return pages, nil
}

// pageTitle digs the plain title out of a page object's properties.
func pageTitle(page map[string]interface{}) string {
	properties, ok := page["properties"].(map[string]interface{})
	if !ok {
		return "Untitled"
	}
	titleProp, ok := properties["title"].(map[string]interface{})
	if !ok {
		return "Untitled"
	}
	titleArray, ok := titleProp["title"].([]interface{})
	if !ok || len(titleArray) == 0 {
		return "Untitled"
	}
	titleText, ok := titleArray[0].(map[string]interface{})
	if !ok {
		return "Untitled"
	}
	text, ok := titleText["text"].(map[string]interface{})
	if !ok {
		return "Untitled"
	}
	if content, ok := text["content"].(string); ok {
		return content
	}
	return "Untitled"
}
