package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/app/client/config"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "Synapse-Client/1.0",
	}, nil
}

func (h *httpClient) SetToken(token string) {
	h.token = token
}

func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return nil
}

func (h *httpClient) Register(ctx context.Context, req RegisterRequest) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/user/register", req)
	if err != nil {
		return err
	}

	var result struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	if err := h.parseResponse(resp, &result); err != nil {
		return err
	}
	if result.Status != "Ok" {
		return fmt.Errorf("registration refused: %s", result.Error)
	}
	return nil
}

func (h *httpClient) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	resp, err := h.doRequest(ctx, http.MethodPost, "/user/login", body)
	if err != nil {
		return LoginResult{}, err
	}

	var result LoginResult
	if err := h.parseResponse(resp, &result); err != nil {
		return LoginResult{}, err
	}
	if result.Status != "Ok" {
		return LoginResult{}, fmt.Errorf("login refused: %s", result.Error)
	}

	h.token = result.Token
	return result, nil
}

// CreateRecord posts to the typed endpoint of the given category. The
// body must match that category's request shape.
func (h *httpClient) CreateRecord(ctx context.Context, category string, body any) (CreateResult, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/records/"+category, body)
	if err != nil {
		return CreateResult{}, err
	}

	var result CreateResult
	if err := h.parseResponse(resp, &result); err != nil {
		return CreateResult{}, err
	}
	if result.Status != "Ok" {
		return CreateResult{}, fmt.Errorf("record refused: %s", result.Error)
	}
	return result, nil
}

func (h *httpClient) ListRecords(ctx context.Context, category, username string) ([]RecordView, error) {
	path := "/api/records/" + category
	if username != "" {
		path += "?user=" + username
	}

	resp, err := h.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		Records []RecordView `json:"records"`
		Status  string       `json:"status"`
		Error   string       `json:"error"`
	}
	if err := h.parseResponse(resp, &result); err != nil {
		return nil, err
	}
	if result.Status != "Ok" {
		return nil, fmt.Errorf("list refused: %s", result.Error)
	}
	return result.Records, nil
}

func (h *httpClient) Summary(ctx context.Context, days int, username string) (SummaryResult, error) {
	path := "/api/summary?days=" + strconv.Itoa(days)
	if username != "" {
		path += "&user=" + username
	}

	resp, err := h.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return SummaryResult{}, err
	}

	var result SummaryResult
	if err := h.parseResponse(resp, &result); err != nil {
		return SummaryResult{}, err
	}
	if result.Status != "Ok" {
		return SummaryResult{}, fmt.Errorf("summary refused: %s", result.Error)
	}
	return result, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	h.log.Debug("received response",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Error != "" {
				return fmt.Errorf("server error: %s", errResp.Error)
			}
			if errResp.Detail != "" {
				return fmt.Errorf("server error: %s", errResp.Detail)
			}
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}

	return nil
}
