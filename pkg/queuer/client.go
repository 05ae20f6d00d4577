package queuer

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the external similarity-scorer job queue. The scorer
// writes ArticleDuplicateAnalysis rows out of band; this client only
// requests jobs and inspects queue state.
type Client struct {
	base  string
	httpc *http.Client
}

func New(base string) *Client {
	return &Client{base: base, httpc: &http.Client{Timeout: 20 * time.Second}}
}

func (c *Client) Configured() bool { return c.base != "" }

// RequestJob asks the scorer to compute pairwise scores for every candidate
// of the report. Fire and forget: scores show up later in the store.
func (c *Client) RequestJob(reportID uint) (int, []byte, error) {
	return c.do(http.MethodGet, fmt.Sprintf("deduper/jobs/reportId/%d", reportID))
}

func (c *Client) JobList() (int, []byte, error) {
	return c.do(http.MethodGet, "deduper/jobs/list")
}

func (c *Client) ClearAnalysesTable() (int, []byte, error) {
	return c.do(http.MethodDelete, "deduper/clear-db-table")
}

func (c *Client) do(method, path string) (int, []byte, error) {
	url := strings.TrimRight(c.base, "/") + "/" + path
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return 0, nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}
