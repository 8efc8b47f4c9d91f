//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/vgi/vgi-server/internal/model"
)

type Aggregator interface {
	LiveStreams(ctx context.Context) ([]model.LiveStream, error)
	RecentVideos(ctx context.Context, limit int) (model.RecentVideoList, error)
	RecentClips(ctx context.Context, limit int) (model.RecentVideoList, error)
}
