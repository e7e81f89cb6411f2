// Package client talks to the Trello REST API.
// Docs: https://developer.atlassian.com/cloud/trello/rest/
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jobtrail/jobtrail-backend/internal/logging"
	"github.com/jobtrail/jobtrail-backend/internal/trello/domain"
)

// DefaultBaseURL is the public Trello API root.
const DefaultBaseURL = "https://api.trello.com/1"

const (
	boardFields = "id,name,desc,url,closed"
	listFields  = "id,name,closed,pos"
	cardFields  = "id,name,desc,due,dueComplete,closed,idList,labels,dateLastActivity,url"
)

// Client performs authenticated read-only calls against Trello.
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
}

// New creates a Client. An empty baseURL selects DefaultBaseURL and a nil
// httpClient selects http.DefaultClient.
func New(baseURL string, creds Credentials, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      creds,
		httpClient: httpClient,
	}
}

// FetchBoards lists the open boards of the authenticated member.
func (c *Client) FetchBoards(ctx context.Context) ([]domain.Board, error) {
	var boards []domain.Board
	err := c.get(ctx, "/members/me/boards", url.Values{
		"filter": {"open"},
		"fields": {boardFields},
	}, &boards)
	if err != nil {
		return nil, err
	}
	return boards, nil
}

func (c *Client) FetchBoard(ctx context.Context, boardID string) (*domain.Board, error) {
	var board domain.Board
	err := c.get(ctx, "/boards/"+url.PathEscape(boardID), url.Values{
		"fields": {boardFields},
	}, &board)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// FetchLists returns the open lists of a board.
func (c *Client) FetchLists(ctx context.Context, boardID string) ([]domain.List, error) {
	var lists []domain.List
	err := c.get(ctx, "/boards/"+url.PathEscape(boardID)+"/lists", url.Values{
		"filter": {"open"},
		"fields": {listFields},
	}, &lists)
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// FetchCards returns every card of a board, closed ones included.
func (c *Client) FetchCards(ctx context.Context, boardID string) ([]domain.Card, error) {
	var cards []domain.Card
	err := c.get(ctx, "/boards/"+url.PathEscape(boardID)+"/cards", url.Values{
		"fields": {cardFields},
	}, &cards)
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	creds, err := c.creds.Resolve()
	if err != nil {
		return err
	}

	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("key", creds.APIKey)
	q.Set("token", creds.Token)
	reqURL := c.baseURL + path + "?" + q.Encode()

	logger := logging.FromContext(ctx).WithField("path", path)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.WrapServiceError("create request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the full URL, key and token included.
		logger.WithField("latency", time.Since(start)).Warn("trello request failed")
		return domain.WrapServiceError("trello request "+path, unwrapURLError(err))
	}
	defer resp.Body.Close()

	logger.WithFields(log.Fields{
		"status":  resp.StatusCode,
		"latency": time.Since(start),
	}).Debug("trello request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return domain.NewServiceError(resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.WrapServiceError(fmt.Sprintf("decode %s response", path), err)
	}
	return nil
}

func unwrapURLError(err error) error {
	if uerr, ok := err.(*url.Error); ok {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}
