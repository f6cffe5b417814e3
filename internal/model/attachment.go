package model

import (
	"errors"
	"strings"
)

const (
	ImageAttachmentKind = "image"
	VideoAttachmentKind = "video"
	AudioAttachmentKind = "audio"
	FileAttachmentKind  = "file"
)

// ErrAttachmentNotFound means the media host has no object behind a descriptor.
var ErrAttachmentNotFound = errors.New("attachment not found")

type Attachment struct {
	URL      string `json:"url"`
	Kind     string `json:"kind"`
	Filename string `json:"filename"`
}

func IsKnownAttachmentKind(kind string) bool {
	switch kind {
	case ImageAttachmentKind, VideoAttachmentKind, AudioAttachmentKind, FileAttachmentKind:
		return true
	}
	return false
}

// AttachmentKindFor maps a MIME type onto an attachment kind.
func AttachmentKindFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return ImageAttachmentKind
	case strings.HasPrefix(contentType, "video/"):
		return VideoAttachmentKind
	case strings.HasPrefix(contentType, "audio/"):
		return AudioAttachmentKind
	default:
		return FileAttachmentKind
	}
}
