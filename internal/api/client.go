// Package api is the HTTP client for the accreditation backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"accredash/internal/domain"
	"accredash/internal/telemetry"
	"accredash/internal/timeouts"
)

const requestIDHeader = "X-Request-ID"

// Options configures a Client.
type Options struct {
	BaseURL   string
	AssetsURL string // defaults to BaseURL
	Token     string

	HTTPClient *http.Client
	Logger     logrus.FieldLogger
	Telemetry  *telemetry.Provider
}

// Client talks to the accreditation API. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	assetsURL  *url.URL
	token      string
	httpClient *http.Client
	logger     logrus.FieldLogger
	tel        *telemetry.Provider
}

// NewClient validates the base URLs and returns a ready client.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBase(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	assets := base
	if strings.TrimSpace(opts.AssetsURL) != "" {
		if assets, err = parseBase(opts.AssetsURL); err != nil {
			return nil, fmt.Errorf("invalid assets url: %w", err)
		}
	}

	c := &Client{
		baseURL:    base,
		assetsURL:  assets,
		token:      strings.TrimSpace(opts.Token),
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		tel:        opts.Telemetry,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: timeouts.APIRequest}
	}
	if c.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.logger = l
	}
	if c.tel == nil {
		c.tel = telemetry.Disabled()
	}
	return c, nil
}

func parseBase(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%q is not absolute", raw)
	}
	return u, nil
}

// SearchOrganizations lists organizations matching q.
func (c *Client) SearchOrganizations(ctx context.Context, q OrganizationQuery) ([]domain.OrganizationProfile, error) {
	var out []domain.OrganizationProfile
	if err := c.doJSON(ctx, http.MethodGet, "/organizations", q.Values(), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.OrganizationProfile{}
	}
	return out, nil
}

// GetOrganization fetches one organization profile.
func (c *Client) GetOrganization(ctx context.Context, id string) (*domain.OrganizationProfile, error) {
	var out domain.OrganizationProfile
	if err := c.doJSON(ctx, http.MethodGet, orgPath(id), nil, nil, &out, telemetry.OrgID(id)); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRoster fetches the roster header and its ordered members.
func (c *Client) GetRoster(ctx context.Context, orgID string) (*domain.RosterRecord, error) {
	var out domain.RosterRecord
	if err := c.doJSON(ctx, http.MethodGet, orgPath(orgID)+"/roster", nil, nil, &out, telemetry.OrgID(orgID)); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddMember posts a new member as multipart form data.
func (c *Client) AddMember(ctx context.Context, orgID string, m MemberUpload) (*domain.RosterMember, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range m.Fields[k] {
			if err := w.WriteField(k, v); err != nil {
				return nil, fmt.Errorf("write field %s: %w", k, err)
			}
		}
	}
	if len(m.Picture) > 0 {
		fw, err := w.CreateFormFile("profile_picture", path.Base(m.PictureName))
		if err != nil {
			return nil, fmt.Errorf("create profile picture part: %w", err)
		}
		if _, err := fw.Write(m.Picture); err != nil {
			return nil, fmt.Errorf("write profile picture: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	var out domain.RosterMember
	err := c.do(ctx, http.MethodPost, orgPath(orgID)+"/roster/members", nil,
		&buf, w.FormDataContentType(), &out, telemetry.OrgID(orgID))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitRosterCompletion asks the API to move the roster into review.
func (c *Client) SubmitRosterCompletion(ctx context.Context, orgID string) (*domain.RosterRecord, error) {
	body := map[string]string{"status": domain.RosterStatusForReview}
	var out domain.RosterRecord
	if err := c.doJSON(ctx, http.MethodPost, orgPath(orgID)+"/roster/completion", nil, body, &out, telemetry.OrgID(orgID)); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAccomplishments fetches the accomplishment bundle of every organization.
func (c *Client) ListAccomplishments(ctx context.Context) ([]*domain.AccomplishmentBundle, error) {
	var out []*domain.AccomplishmentBundle
	if err := c.doJSON(ctx, http.MethodGet, "/accomplishments", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssetURL resolves an uploaded file of an organization to its static URL.
// Empty filenames resolve to "".
func (c *Client) AssetURL(orgID, filename string) string {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return ""
	}
	if u, err := url.Parse(filename); err == nil && u.IsAbs() {
		return filename
	}
	u := withPath(*c.assetsURL, "/uploads/"+url.PathEscape(orgID)+"/"+url.PathEscape(path.Base(filename)))
	u.RawQuery = ""
	return u.String()
}

// withPath appends an already escaped path to u. RawPath carries the
// escaped form so String does not escape it again.
func withPath(u url.URL, escaped string) url.URL {
	u.RawPath = strings.TrimRight(u.EscapedPath(), "/") + escaped
	u.Path, _ = url.PathUnescape(u.RawPath)
	return u
}

func orgPath(id string) string {
	return "/organizations/" + url.PathEscape(id)
}

func (c *Client) doJSON(ctx context.Context, method, p string, query url.Values, reqBody, out any, attrs ...attribute.KeyValue) error {
	var body io.Reader
	contentType := ""
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("json marshal request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, method, p, query, body, contentType, out, attrs...)
}

func (c *Client) do(ctx context.Context, method, p string, query url.Values, body io.Reader, contentType string, out any, attrs ...attribute.KeyValue) (err error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	u := withPath(*c.baseURL, p)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	op := method + " " + p

	ctx, span := c.tel.StartRequest(ctx, method, p, attrs...)
	status := 0
	requestID := uuid.NewString()
	started := time.Now()
	defer func() {
		telemetry.EndRequest(span, status, err)
		entry := c.logger.WithFields(logrus.Fields{
			"request_id":  requestID,
			"method":      method,
			"path":        p,
			"status":      status,
			"duration_ms": time.Since(started).Milliseconds(),
		})
		if err != nil {
			entry.WithError(err).Warn("api request failed")
			return
		}
		entry.Debug("api request")
	}()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fetchError(op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fetchError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()
	status = resp.StatusCode

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fetchError(op, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Status: resp.StatusCode}
		var env envelope
		if json.Unmarshal(respBody, &env) == nil {
			statusErr.Code = strings.TrimSpace(env.Code)
			statusErr.Message = strings.TrimSpace(env.Message)
		}
		return fmt.Errorf("%s: %w", op, statusErr)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fetchError(op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
