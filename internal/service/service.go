package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vgi/vgi-server/internal/errs"
	"github.com/vgi/vgi-server/internal/model"
)

const (
	maxConcurrentAccounts = 8
	clipsWindowDays       = 7
)

type Service struct {
	client PlatformClient
	roster Roster
	now    func() time.Time
}

func New(client PlatformClient, roster Roster) *Service {
	return &Service{
		client: client,
		roster: roster,
		now:    time.Now,
	}
}

// LiveStreams returns the roster members currently live, in the order Twitch reports them.
// The three reads are batched over the whole roster.
func (s *Service) LiveStreams(ctx context.Context) ([]model.LiveStream, error) {
	ids := s.roster.IDs()

	var (
		streams []model.Stream
		users   []model.User
		colors  []model.ChatColor
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		streams, err = s.client.GetLiveStreams(gctx, ids)
		if err != nil {
			return fmt.Errorf("failed to get live streams: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		users, err = s.client.GetUsers(gctx, ids)
		if err != nil {
			return fmt.Errorf("failed to get users: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		colors, err = s.client.GetChatColors(gctx, ids)
		if err != nil {
			return fmt.Errorf("failed to get chat colors: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]model.LiveStream, 0, len(streams))
	for _, stream := range streams {
		user, err := single(users, stream.UserID, userID)
		if err != nil {
			return nil, fmt.Errorf("user for stream: %w", err)
		}
		color, err := single(colors, stream.UserID, func(c model.ChatColor) string { return c.UserID })
		if err != nil {
			return nil, fmt.Errorf("chat color for stream: %w", err)
		}

		result = append(result, model.LiveStream{
			GameName:        stream.GameName,
			DisplayName:     user.DisplayName,
			StreamThumbnail: streamThumbnail.apply(stream.ThumbnailURL),
			ProfileImage:    user.ProfileImageURL,
			ProfileColor:    color.Color,
		})
	}

	return result, nil
}

// RecentVideos returns up to limit archived broadcasts of the past week across the roster,
// newest first.
func (s *Service) RecentVideos(ctx context.Context, limit int) (model.RecentVideoList, error) {
	return s.collectRecent(ctx, limit, func(ctx context.Context, id string) (model.RecentVideoList, error) {
		videos, err := s.client.GetArchiveVideos(ctx, id, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to get videos of %s: %w", id, err)
		}

		users, err := s.client.GetUsers(ctx, []string{id})
		if err != nil {
			return nil, fmt.Errorf("failed to get user %s: %w", id, err)
		}

		items := make(model.RecentVideoList, 0, len(videos))
		for _, video := range videos {
			owner, err := single(users, video.UserID, userID)
			if err != nil {
				return nil, fmt.Errorf("user for video: %w", err)
			}

			items = append(items, model.RecentVideo{
				Title:           video.Title,
				StreamThumbnail: vodThumbnail.apply(video.ThumbnailURL),
				DisplayName:     owner.DisplayName,
				URL:             video.URL,
				CreatedAt:       video.CreatedAt,
			})
		}

		return items, nil
	})
}

// RecentClips returns up to limit clips created in the past seven days across the roster,
// newest first.
func (s *Service) RecentClips(ctx context.Context, limit int) (model.RecentVideoList, error) {
	startedAt := clipsWindowStart(s.now())

	return s.collectRecent(ctx, limit, func(ctx context.Context, id string) (model.RecentVideoList, error) {
		clips, err := s.client.GetClips(ctx, id, startedAt, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to get clips of %s: %w", id, err)
		}

		users, err := s.client.GetUsers(ctx, []string{id})
		if err != nil {
			return nil, fmt.Errorf("failed to get user %s: %w", id, err)
		}

		items := make(model.RecentVideoList, 0, len(clips))
		for _, clip := range clips {
			owner, err := single(users, clip.BroadcasterID, userID)
			if err != nil {
				return nil, fmt.Errorf("user for clip: %w", err)
			}

			items = append(items, model.RecentVideo{
				Title:           clip.Title,
				StreamThumbnail: clipThumbnail.apply(clip.ThumbnailURL),
				DisplayName:     owner.DisplayName,
				URL:             clip.URL,
				CreatedAt:       clip.CreatedAt,
			})
		}

		return items, nil
	})
}

type accountFetcher func(ctx context.Context, id string) (model.RecentVideoList, error)

// collectRecent runs fetch for every roster account, at most maxConcurrentAccounts at a time.
// The first failure cancels the rest and fails the whole call.
func (s *Service) collectRecent(ctx context.Context, limit int, fetch accountFetcher) (model.RecentVideoList, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidSize, limit)
	}
	if limit == 0 {
		return model.RecentVideoList{}, nil
	}

	ids := s.roster.IDs()
	perAccount := make([]model.RecentVideoList, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAccounts)
	for i, id := range ids {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			items, err := fetch(gctx, id)
			if err != nil {
				return err
			}
			perAccount[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pool := make(model.RecentVideoList, 0, len(ids)*limit)
	for _, items := range perAccount {
		pool = append(pool, items...)
	}

	slices.SortStableFunc(pool, func(a, b model.RecentVideo) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(pool) > limit {
		pool = pool[:limit]
	}

	return pool, nil
}

func userID(u model.User) string { return u.ID }

// single returns the only item whose key equals id.
func single[T any](items []T, id string, key func(T) string) (T, error) {
	var (
		found T
		count int
	)
	for _, item := range items {
		if key(item) == id {
			found = item
			count++
		}
	}
	if count != 1 {
		var zero T
		return zero, fmt.Errorf("%w %s: %d matches", errs.ErrJoin, id, count)
	}

	return found, nil
}

func clipsWindowStart(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -clipsWindowDays)
}
