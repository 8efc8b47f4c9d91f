package model

// Stream is a live broadcast as reported by Twitch.
type Stream struct {
	UserID       string
	GameName     string
	ThumbnailURL string
}

type LiveStream struct {
	GameName        string
	DisplayName     string
	StreamThumbnail string
	ProfileImage    string
	ProfileColor    string
}
