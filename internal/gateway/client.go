// Package gateway implements the HTTP client for the remote adjudication
// backend.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/plumline/claimdesk/internal/common"
	"github.com/plumline/claimdesk/internal/model"
	"github.com/plumline/claimdesk/internal/service"
)

const (
	requestTimeout = 30 * time.Second

	// Successful pending fetches are memoized briefly so a render loop
	// re-entering the queue does not hammer the server. Errors are never
	// cached; re-invoking the transition always retries.
	pendingCacheTTL = 5 * time.Second
	pendingCacheKey = "pending"
)

// Client talks to the claim backend over HTTP. It implements
// service.Gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
}

// NewClient creates a gateway client for the given backend base URL.
func NewClient(baseURL string) (*Client, error) {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: backend base URL is required", common.ErrMissingConfig)
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("%w: backend URL must be http(s): %s", common.ErrInvalidConfig, baseURL)
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		cache: gocache.New(pendingCacheTTL, time.Minute),
	}, nil
}

// UploadClaim posts the documents as a multipart form and returns the
// adjudicated claim view. Uploads are never retried automatically; a retry
// could double-submit the claim.
func (c *Client) UploadClaim(ctx context.Context, files []string, memberID string) (*model.ClaimView, error) {
	if len(files) == 0 {
		return nil, common.ErrNoFilesSelected
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, path := range files {
		if err := addFilePart(writer, path); err != nil {
			return nil, err
		}
	}
	if memberID != "" {
		if err := writer.WriteField("member_id", memberID); err != nil {
			return nil, fmt.Errorf("failed to write member_id field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/claims/upload", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	slog.Debug("Uploading claim documents", "files", len(files), "member_id", memberID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, common.NewUserError("Backend connection failed", fmt.Errorf("%w: %v", common.ErrGatewayConnection, err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serverError(resp)
	}

	var view model.ClaimView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if view.Status == "" {
		view.Status = "ok"
	}
	return &view, nil
}

// pendingEnvelope accepts the object-wrapped queue shapes the backend has
// shipped over time.
type pendingEnvelope struct {
	Cases []model.QueueEntry `json:"cases"`
	Items []model.QueueEntry `json:"items"`
}

// FetchPending returns the claims awaiting manual review. The server has
// returned both a bare array and a cases/items envelope across versions;
// both are accepted. Transient failures are retried.
func (c *Client) FetchPending(ctx context.Context) ([]model.QueueEntry, error) {
	if cached, ok := c.cache.Get(pendingCacheKey); ok {
		entries := cached.([]model.QueueEntry)
		return entries, nil
	}

	var entries []model.QueueEntry
	err := common.WithRetry(ctx, func() error {
		var fetchErr error
		entries, fetchErr = c.fetchPendingOnce(ctx)
		return fetchErr
	}, service.RetryOptions{MaxAttempts: 3, InitialDelay: 200 * time.Millisecond})
	if err != nil {
		return nil, err
	}

	c.cache.Set(pendingCacheKey, entries, pendingCacheTTL)
	return entries, nil
}

func (c *Client) fetchPendingOnce(ctx context.Context) ([]model.QueueEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/claims/pending", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create pending request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, common.NewUserError("Backend connection failed", fmt.Errorf("%w: %v", common.ErrGatewayConnection, err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serverError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending response: %w", err)
	}

	return decodePending(raw)
}

func decodePending(raw []byte) ([]model.QueueEntry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []model.QueueEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("failed to decode pending list: %w", err)
		}
		return entries, nil
	}

	var env pendingEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("failed to decode pending envelope: %w", err)
	}
	if env.Cases != nil {
		return env.Cases, nil
	}
	if env.Items != nil {
		return env.Items, nil
	}
	return []model.QueueEntry{}, nil
}

// PatchDecision persists a manual override. A non-2xx response is a
// synchronization failure; the caller keeps its local decision either way.
func (c *Client) PatchDecision(ctx context.Context, claimID int64, patch service.DecisionPatch) error {
	payload, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("failed to encode decision patch: %w", err)
	}

	url := fmt.Sprintf("%s/v1/claims/%d", c.baseURL, claimID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create patch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return common.NewUserError("Backend connection failed", fmt.Errorf("%w: %v", common.ErrGatewayConnection, err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return serverError(resp)
	}

	// Any cached pending list is stale once a decision changes.
	c.cache.Delete(pendingCacheKey)
	return nil
}

// serverError turns a non-2xx response into a user-facing error. The
// backend reports failures as a JSON body with a detail string (sometimes
// an object carrying a message), or as plain text.
func serverError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	message := fmt.Sprintf("Server error: %d", resp.StatusCode)

	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(body.Detail, &detail); err == nil {
			message = detail
		} else {
			var obj struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(body.Detail, &obj); err == nil && obj.Message != "" {
				message = obj.Message
			}
		}
	} else if text := strings.TrimSpace(string(raw)); text != "" {
		message = text
	}

	return common.NewUserError(message, fmt.Errorf("server returned status %d", resp.StatusCode))
}

func addFilePart(writer *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return common.NewUserError(fmt.Sprintf("Cannot read file %s", filepath.Base(path)), err)
	}
	defer func() { _ = f.Close() }()

	part, err := writer.CreateFormFile("files", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to copy file %s: %w", path, err)
	}
	return nil
}

// Ensure Client implements the Gateway interface.
var _ service.Gateway = (*Client)(nil)
