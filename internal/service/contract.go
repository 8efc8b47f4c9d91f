//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"
	"time"

	"github.com/vgi/vgi-server/internal/model"
)

type PlatformClient interface {
	GetLiveStreams(ctx context.Context, userIDs []string) ([]model.Stream, error)
	GetUsers(ctx context.Context, ids []string) ([]model.User, error)
	GetChatColors(ctx context.Context, userIDs []string) ([]model.ChatColor, error)
	GetArchiveVideos(ctx context.Context, userID string, first int) ([]model.Video, error)
	GetClips(ctx context.Context, broadcasterID string, startedAt time.Time, first int) ([]model.Clip, error)
}

type Roster interface {
	IDs() []string
}
