package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/vocabbuilder/internal/client/models"
	"github.com/dmitrijs2005/vocabbuilder/internal/logging"
)

// HTTPClient talks to the vocabulary API over plain HTTP/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	headers HeaderSource
	logger  logging.Logger
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithLogger replaces the default slog-backed logger.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// NewHTTPClient constructs a client for the given base URL
// (e.g. "http://127.0.0.1:8000"). The trailing slash is optional.
func NewHTTPClient(baseURL string, headers HeaderSource, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		headers: headers,
		logger:  logging.NewSlogLogger(slog.Default()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one request. withAuth attaches the bearer header from the
// header source; out, when non-nil, receives the decoded JSON body.
func (c *HTTPClient) do(ctx context.Context, method, path string, withAuth bool, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	if withAuth {
		key, value, err := c.headers.AuthHeader(ctx)
		if err != nil {
			return fmt.Errorf("failed to read auth header: %w", err)
		}
		if key != "" {
			req.Header.Set(key, value)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "request completed",
		"method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// doJSON marshals in (when non-nil) as the JSON request body.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, withAuth bool, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, withAuth, contentType, body, out)
}

// decodeError turns a non-2xx response into an *Error, preserving the
// server-provided detail message when the body carries one.
func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}

// tokenResponse is the envelope both auth endpoints return.
type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

// Login authenticates with a form-encoded body (OAuth2 password form) and
// returns the issued token with the user record.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", false,
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()), &resp)
	if err != nil {
		return "", nil, err
	}
	return resp.AccessToken, &resp.User, nil
}

// Register creates an account; the response envelope is symmetric with Login.
func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (string, *models.User, error) {
	payload := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}

	var resp tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", false, payload, &resp); err != nil {
		return "", nil, err
	}
	return resp.AccessToken, &resp.User, nil
}

func (c *HTTPClient) Terms(ctx context.Context) ([]models.Term, error) {
	var terms []models.Term
	if err := c.doJSON(ctx, http.MethodGet, "/api/terms", true, nil, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

func (c *HTTPClient) Term(ctx context.Context, id int64) (*models.Term, error) {
	var term models.Term
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/terms/%d", id), true, nil, &term); err != nil {
		return nil, err
	}
	return &term, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := c.doJSON(ctx, http.MethodGet, "/api/stats", true, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// QuizRandom fetches a randomized question batch of the requested size.
func (c *HTTPClient) QuizRandom(ctx context.Context, count int) ([]models.QuizQuestion, error) {
	var resp struct {
		Questions []models.QuizQuestion `json:"questions"`
		Total     int                   `json:"total"`
	}
	path := fmt.Sprintf("/api/quiz/random?count=%d", count)
	if err := c.doJSON(ctx, http.MethodGet, path, true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

// CheckAnswer submits the raw answer string for grading.
func (c *HTTPClient) CheckAnswer(ctx context.Context, termID int64, answer string) (*models.AnswerFeedback, error) {
	payload := struct {
		TermID     int64  `json:"term_id"`
		UserAnswer string `json:"user_answer"`
	}{TermID: termID, UserAnswer: answer}

	var feedback models.AnswerFeedback
	if err := c.doJSON(ctx, http.MethodPost, "/api/quiz/check", true, payload, &feedback); err != nil {
		return nil, err
	}
	return &feedback, nil
}

// SaveScore persists the final tally of a finished quiz session.
func (c *HTTPClient) SaveScore(ctx context.Context, tally models.ScoreTally) error {
	return c.doJSON(ctx, http.MethodPost, "/api/scores", true, tally, nil)
}

func (c *HTTPClient) MyScores(ctx context.Context) ([]models.Score, error) {
	var scores []models.Score
	if err := c.doJSON(ctx, http.MethodGet, "/api/scores/my-history", true, nil, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

func (c *HTTPClient) AdminUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/users", true, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) AdminScores(ctx context.Context) ([]models.Score, error) {
	var scores []models.Score
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/scores/all", true, nil, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

func (c *HTTPClient) CreateTerm(ctx context.Context, draft models.TermDraft) (*models.Term, error) {
	var term models.Term
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/terms", true, draft, &term); err != nil {
		return nil, err
	}
	return &term, nil
}

func (c *HTTPClient) UpdateTerm(ctx context.Context, id int64, draft models.TermDraft) (*models.Term, error) {
	var term models.Term
	path := fmt.Sprintf("/api/admin/terms/%d", id)
	if err := c.doJSON(ctx, http.MethodPut, path, true, draft, &term); err != nil {
		return nil, err
	}
	return &term, nil
}

func (c *HTTPClient) DeleteTerm(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/admin/terms/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, true, nil, nil)
}
