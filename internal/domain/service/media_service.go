package service

import (
	"context"
	"time"
)

// UploadTicket authorizes one direct client upload to the media host. The
// client PUTs the file to UploadURL before ExpiresAt; PublicURL is where the
// object is readable afterwards.
type UploadTicket struct {
	UploadURL string            `json:"uploadUrl"`
	PublicURL string            `json:"publicUrl"`
	Headers   map[string]string `json:"headers,omitempty"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

// MediaSigner issues time-boxed signatures for direct uploads to the media
// host. The server never proxies file bytes.
type MediaSigner interface {
	SignUpload(ctx context.Context, ownerUID, fileName, contentType string) (*UploadTicket, error)
}
