package model

import "time"

// Video is an archived broadcast (vod).
type Video struct {
	UserID       string
	Title        string
	ThumbnailURL string
	URL          string
	CreatedAt    time.Time
}

type Clip struct {
	BroadcasterID string
	Title         string
	ThumbnailURL  string
	URL           string
	CreatedAt     time.Time
}

// RecentVideo is the shared view of vods and clips. CreatedAt only drives ordering.
type RecentVideo struct {
	Title           string
	StreamThumbnail string
	DisplayName     string
	URL             string
	CreatedAt       time.Time
}

type RecentVideoList []RecentVideo
