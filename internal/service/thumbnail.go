package service

import (
	"strconv"
	"strings"
)

type thumbnailSize struct {
	width  int
	height int
}

var (
	streamThumbnail = thumbnailSize{width: 640, height: 480}
	clipThumbnail   = thumbnailSize{width: 640, height: 480}
	vodThumbnail    = thumbnailSize{width: 300, height: 300}
)

// apply fills the size placeholders of a Twitch thumbnail template. Vod templates use the
// %{width} form, stream and clip templates the bare {width} form.
func (s thumbnailSize) apply(template string) string {
	w, h := strconv.Itoa(s.width), strconv.Itoa(s.height)
	return strings.NewReplacer(
		"%{width}", w,
		"%{height}", h,
		"{width}", w,
		"{height}", h,
	).Replace(template)
}
