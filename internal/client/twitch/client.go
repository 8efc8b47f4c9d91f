package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/nicklaw5/helix/v2"

	"github.com/vgi/vgi-server/internal/config"
	"github.com/vgi/vgi-server/internal/errs"
	"github.com/vgi/vgi-server/internal/model"
)

const (
	videoTypeArchive = "archive"
	videoPeriodWeek  = "week"

	maxPageSize = 100

	// tokenExpiryMargin renews the app token before Twitch starts rejecting it.
	tokenExpiryMargin = 5 * time.Minute
)

type Client struct {
	helix      *helix.Client
	httpClient *http.Client
	clientID   string
	apiBaseURL string
	now        func() time.Time

	mu             sync.RWMutex
	token          string
	tokenExpiresAt time.Time
}

func New(cfg *config.Config) (*Client, error) {
	return NewWithHTTPClient(cfg, &http.Client{
		Timeout: cfg.Twitch.Timeout,
	})
}

func NewWithHTTPClient(cfg *config.Config, httpClient *http.Client) (*Client, error) {
	client, err := helix.NewClient(&helix.Options{
		ClientID:     cfg.Twitch.ClientID,
		ClientSecret: cfg.Twitch.ClientSecret,
		APIBaseURL:   cfg.Twitch.APIBaseURL,
		HTTPClient:   httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("helix: NewClient: %w", err)
	}

	return &Client{
		helix:      client,
		httpClient: httpClient,
		clientID:   cfg.Twitch.ClientID,
		apiBaseURL: strings.TrimRight(cfg.Twitch.APIBaseURL, "/"),
		now:        time.Now,
	}, nil
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) GetLiveStreams(ctx context.Context, userIDs []string) ([]model.Stream, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var resp *helix.StreamsResponse
	err := c.call(ctx, "GetStreams", func(h *helix.Client) (*helix.ResponseCommon, error) {
		var err error
		resp, err = h.GetStreams(&helix.StreamsParams{
			UserIDs: userIDs,
			First:   pageSize(len(userIDs)),
		})
		if err != nil {
			return nil, err
		}
		return &resp.ResponseCommon, nil
	})
	if err != nil {
		return nil, err
	}

	streams := make([]model.Stream, 0, len(resp.Data.Streams))
	for _, s := range resp.Data.Streams {
		streams = append(streams, model.Stream{
			UserID:       s.UserID,
			GameName:     s.GameName,
			ThumbnailURL: s.ThumbnailURL,
		})
	}

	return streams, nil
}

func (c *Client) GetUsers(ctx context.Context, ids []string) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	return c.getUsers(ctx, &helix.UsersParams{IDs: ids})
}

// GetUsersByLogin resolves login names, used when building the roster.
func (c *Client) GetUsersByLogin(ctx context.Context, logins []string) ([]model.User, error) {
	if len(logins) == 0 {
		return nil, nil
	}

	return c.getUsers(ctx, &helix.UsersParams{Logins: logins})
}

func (c *Client) getUsers(ctx context.Context, params *helix.UsersParams) ([]model.User, error) {
	var resp *helix.UsersResponse
	err := c.call(ctx, "GetUsers", func(h *helix.Client) (*helix.ResponseCommon, error) {
		var err error
		resp, err = h.GetUsers(params)
		if err != nil {
			return nil, err
		}
		return &resp.ResponseCommon, nil
	})
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(resp.Data.Users))
	for _, u := range resp.Data.Users {
		users = append(users, model.User{
			ID:              u.ID,
			Login:           u.Login,
			DisplayName:     u.DisplayName,
			ProfileImageURL: u.ProfileImageURL,
		})
	}

	return users, nil
}

// GetChatColors reads /chat/color directly: helix's GetUserChatColor sends no user_id query
// and never fills its response data.
func (c *Client) GetChatColors(ctx context.Context, userIDs []string) ([]model.ChatColor, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.ensureToken(); err != nil {
		return nil, err
	}

	query := url.Values{}
	for _, id := range userIDs {
		query.Add("user_id", id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/chat/color?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: helix: GetUserChatColor: %v", errs.ErrUpstream, err)
	}

	c.mu.RLock()
	req.Header.Set("Authorization", "Bearer "+c.token)
	c.mu.RUnlock()
	req.Header.Set("Client-Id", c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: helix: GetUserChatColor: %v", errs.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, fmt.Errorf("%w: helix: GetUserChatColor failed (%d: %s) %s",
			errs.ErrUpstream, resp.StatusCode, body.Error, body.Message)
	}

	var payload chatColorsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: helix: GetUserChatColor: decode: %v", errs.ErrUpstream, err)
	}

	colors := make([]model.ChatColor, 0, len(payload.Data))
	for _, cc := range payload.Data {
		colors = append(colors, model.ChatColor{
			UserID: cc.UserID,
			Color:  cc.Color,
		})
	}

	return colors, nil
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type chatColorsResponse struct {
	Data []struct {
		UserID string `json:"user_id"`
		Color  string `json:"color"`
	} `json:"data"`
}

// GetArchiveVideos returns up to first past broadcasts of userID published in the last week.
func (c *Client) GetArchiveVideos(ctx context.Context, userID string, first int) ([]model.Video, error) {
	var resp *helix.VideosResponse
	err := c.call(ctx, "GetVideos", func(h *helix.Client) (*helix.ResponseCommon, error) {
		var err error
		resp, err = h.GetVideos(&helix.VideosParams{
			UserID: userID,
			Type:   videoTypeArchive,
			Period: videoPeriodWeek,
			First:  pageSize(first),
		})
		if err != nil {
			return nil, err
		}
		return &resp.ResponseCommon, nil
	})
	if err != nil {
		return nil, err
	}

	videos := make([]model.Video, 0, len(resp.Data.Videos))
	for _, v := range resp.Data.Videos {
		createdAt, err := parseTimestamp(v.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("video %s: %w", v.ID, err)
		}

		videos = append(videos, model.Video{
			UserID:       v.UserID,
			Title:        v.Title,
			ThumbnailURL: v.ThumbnailURL,
			URL:          v.URL,
			CreatedAt:    createdAt,
		})
	}

	return videos, nil
}

// GetClips returns up to first clips of broadcasterID created since startedAt.
func (c *Client) GetClips(ctx context.Context, broadcasterID string, startedAt time.Time, first int) ([]model.Clip, error) {
	var resp *helix.ClipsResponse
	err := c.call(ctx, "GetClips", func(h *helix.Client) (*helix.ResponseCommon, error) {
		var err error
		resp, err = h.GetClips(&helix.ClipsParams{
			BroadcasterID: broadcasterID,
			StartedAt:     helix.Time{Time: startedAt},
			First:         pageSize(first),
		})
		if err != nil {
			return nil, err
		}
		return &resp.ResponseCommon, nil
	})
	if err != nil {
		return nil, err
	}

	clips := make([]model.Clip, 0, len(resp.Data.Clips))
	for _, cl := range resp.Data.Clips {
		createdAt, err := parseTimestamp(cl.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("clip %s: %w", cl.ID, err)
		}

		clips = append(clips, model.Clip{
			BroadcasterID: cl.BroadcasterID,
			Title:         cl.Title,
			ThumbnailURL:  cl.ThumbnailURL,
			URL:           cl.URL,
			CreatedAt:     createdAt,
		})
	}

	return clips, nil
}

// call runs one Helix request under a valid app token and turns transport errors and
// non-200 statuses into ErrUpstream.
func (c *Client) call(ctx context.Context, op string, fn func(h *helix.Client) (*helix.ResponseCommon, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.ensureToken(); err != nil {
		return err
	}

	c.mu.RLock()
	common, err := fn(c.helix)
	c.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("%w: helix: %s: %v", errs.ErrUpstream, op, err)
	}

	if common.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: helix: %s failed (%d: %s) %s",
			errs.ErrUpstream, op, common.StatusCode, common.Error, common.ErrorMessage)
	}

	return nil
}

func (c *Client) ensureToken() error {
	c.mu.RLock()
	valid := c.token != "" && c.now().Before(c.tokenExpiresAt)
	c.mu.RUnlock()
	if valid {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiresAt) {
		return nil
	}

	resp, err := c.helix.RequestAppAccessToken(nil)
	if err != nil {
		return fmt.Errorf("%w: helix: RequestAppAccessToken: %v", errs.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: helix: RequestAppAccessToken failed (%d: %s) %s",
			errs.ErrUpstream, resp.StatusCode, resp.Error, resp.ErrorMessage)
	}

	c.helix.SetAppAccessToken(resp.Data.AccessToken)
	c.token = resp.Data.AccessToken
	c.tokenExpiresAt = c.now().Add(time.Duration(resp.Data.ExpiresIn)*time.Second - tokenExpiryMargin)

	return nil
}

func pageSize(n int) int {
	return max(1, min(n, maxPageSize))
}

func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed created_at %q", errs.ErrUpstream, value)
	}

	return t, nil
}
