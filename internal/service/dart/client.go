package dart

import (
	"context"
	"fmt"
	"time"

	"InsiderPull/internal/domain/models"
	xhttp "InsiderPull/pkg/http"
)

const (
	DefaultBaseURL = "https://opendart.fss.or.kr/api"

	statusOK     = "000"
	statusNoData = "013"
)

// APIError is a non-success status reported inside a DART response body.
type APIError struct {
	Status  string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dart status %s: %s", e.Status, e.Message)
}

// Client talks to the Open DART REST API.
type Client struct {
	apiKey           string
	http             *xhttp.Client
	requestTimeout   time.Duration
	directoryTimeout time.Duration
}

type Option func(*Client)

// WithTimeouts sets the per-query and corp-code download timeouts.
func WithTimeouts(request, directory time.Duration) Option {
	return func(c *Client) {
		c.requestTimeout = request
		c.directoryTimeout = directory
	}
}

func New(apiKey, baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		apiKey:           apiKey,
		requestTimeout:   10 * time.Second,
		directoryTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http = xhttp.NewClient(
		xhttp.WithBaseURL(baseURL),
		xhttp.WithTimeout(c.directoryTimeout),
	)
	return c
}

// DownloadCorpCodes fetches the corp-code ZIP archive.
func (c *Client) DownloadCorpCodes(ctx context.Context) ([]byte, error) {
	var body []byte
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         "/corpCode.xml",
		QueryParams: map[string][]string{"crtfc_key": {c.apiKey}},
		Timeout:     c.directoryTimeout,
	}, &body)
	if err != nil {
		return nil, fmt.Errorf("download corp codes: %w", err)
	}
	return body, nil
}

type majorStockItem struct {
	ReceiptNo    string `json:"rcept_no"`
	ReceiptDate  string `json:"rcept_dt"`
	CorpCode     string `json:"corp_code"`
	CorpName     string `json:"corp_name"`
	Reporter     string `json:"repror"`
	Relation     string `json:"relate"`
	Reason       string `json:"report_resn"`
	SharesBefore string `json:"stkqy_bsis"`
	SharesAfter  string `json:"stkqy_aftn"`
	SharesChange string `json:"stkqy_irds"`
}

type majorStockResponse struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	List    []majorStockItem `json:"list"`
}

// MajorStock returns the insider holding-change filings of one corp.
// Status 013 (no data) is an empty, successful result.
func (c *Client) MajorStock(ctx context.Context, corpCode string) ([]models.RawDisclosure, error) {
	var resp majorStockResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    "/majorstock.json",
		QueryParams: map[string][]string{
			"crtfc_key": {c.apiKey},
			"corp_code": {corpCode},
		},
		Timeout: c.requestTimeout,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("majorstock %s: %w", corpCode, err)
	}

	switch resp.Status {
	case statusOK:
	case statusNoData:
		return nil, nil
	default:
		return nil, &APIError{Status: resp.Status, Message: resp.Message}
	}

	out := make([]models.RawDisclosure, 0, len(resp.List))
	for _, it := range resp.List {
		out = append(out, models.RawDisclosure{
			ReportDate:   it.ReceiptDate,
			Reporter:     it.Reporter,
			Relation:     it.Relation,
			Reason:       it.Reason,
			SharesBefore: it.SharesBefore,
			SharesAfter:  it.SharesAfter,
			SharesChange: it.SharesChange,
		})
	}
	return out, nil
}
