// internal/entrez/client.go
package entrez

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the NCBI E-utilities endpoint root.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// DefaultInterval spaces requests so unauthenticated clients stay under
// NCBI's 3 req/s courtesy limit.
const DefaultInterval = 340 * time.Millisecond

// ErrNotFound is returned when a search matches nothing.
var ErrNotFound = errors.New("no records found")

// Client is a minimal E-utilities client (esearch + esummary).
type Client struct {
	BaseURL string
	Email   string
	Tool    string

	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a client that paces requests at one per interval.
// email identifies the caller to NCBI and is sent on every request.
func NewClient(email string, interval time.Duration) *Client {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Client{
		BaseURL:    DefaultBaseURL,
		Email:      email,
		Tool:       "seqlab-genefetch",
		httpClient: &http.Client{Timeout: 60 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
	}
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	if c.Email != "" {
		q.Set("email", c.Email)
	}
	if c.Tool != "" {
		q.Set("tool", c.Tool)
	}
	u := strings.TrimRight(c.BaseURL, "/") + "/" + endpoint + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ncbi %s failed: %s: %s", endpoint, resp.Status, strings.TrimSpace(string(body)))
	}
	return body, nil
}

type esearchEnvelope struct {
	Result struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// Search runs one esearch page against db and returns the IDs plus the
// total hit count.
func (c *Client) Search(ctx context.Context, db, term string, retstart, retmax int) ([]string, int, error) {
	q := url.Values{}
	q.Set("db", db)
	q.Set("term", term)
	q.Set("retstart", strconv.Itoa(retstart))
	q.Set("retmax", strconv.Itoa(retmax))
	q.Set("retmode", "json")

	body, err := c.get(ctx, "esearch.fcgi", q)
	if err != nil {
		return nil, 0, err
	}
	var env esearchEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, 0, fmt.Errorf("esearch decode: %w", err)
	}
	count, err := strconv.Atoi(env.Result.Count)
	if err != nil {
		return nil, 0, fmt.Errorf("esearch count %q: %w", env.Result.Count, err)
	}
	return env.Result.IDList, count, nil
}

// TaxonomyID resolves an organism name to its first matching TaxID.
func (c *Client) TaxonomyID(ctx context.Context, organism string) (string, error) {
	ids, _, err := c.Search(ctx, "taxonomy", organism, 0, 20)
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("taxonomy search for %q: %w", organism, ErrNotFound)
	}
	return ids[0], nil
}

// GeneIDs pages through every gene record tied to taxid. pageSize is
// the esearch retmax per page; pagination stops at the first short page.
func (c *Client) GeneIDs(ctx context.Context, taxid string, pageSize int) ([]string, error) {
	term := fmt.Sprintf("txid%s[Organism]", taxid)
	var all []string
	for retstart := 0; ; retstart += pageSize {
		ids, _, err := c.Search(ctx, "gene", term, retstart, pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, ids...)
		if len(ids) < pageSize {
			break
		}
	}
	return all, nil
}

// GeneNames fetches one esummary batch and maps each requested ID to
// its gene name, or "Unknown" when the summary lacks one.
func (c *Client) GeneNames(ctx context.Context, ids []string) (map[string]string, error) {
	q := url.Values{}
	q.Set("db", "gene")
	q.Set("id", strings.Join(ids, ","))
	q.Set("retmode", "json")

	body, err := c.get(ctx, "esummary.fcgi", q)
	if err != nil {
		return nil, err
	}
	var env struct {
		Result map[string]json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("esummary decode: %w", err)
	}

	names := make(map[string]string, len(ids))
	for _, id := range ids {
		names[id] = "Unknown"
		raw, ok := env.Result[id]
		if !ok {
			continue
		}
		var doc struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil || doc.Name == "" {
			continue
		}
		names[id] = doc.Name
	}
	return names, nil
}
