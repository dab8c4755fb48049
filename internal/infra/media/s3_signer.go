// Package media issues presigned S3 PUT URLs so clients upload product images
// and verification documents directly to the bucket. The server never proxies
// file bytes.
package media

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	appconfig "haven/config"
	"haven/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultSignatureTTL = 15 * time.Minute

type s3Signer struct {
	presign *s3.PresignClient
	bucket  string
	region  string
	prefix  string
	ttl     time.Duration
	logger  *slog.Logger
}

// NewS3Signer creates a MediaSigner backed by an S3 bucket.
func NewS3Signer(ctx context.Context, cfg *appconfig.Config, logger *slog.Logger) (service.MediaSigner, error) {
	media := cfg.Media
	if media == nil || media.Bucket == "" {
		return nil, errors.New("media bucket is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(media.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			media.AccessKeyID,
			media.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	ttl := media.SignatureTTL
	if ttl <= 0 {
		ttl = defaultSignatureTTL
	}

	client := s3.NewFromConfig(awsCfg)

	return &s3Signer{
		presign: s3.NewPresignClient(client),
		bucket:  media.Bucket,
		region:  media.Region,
		prefix:  strings.Trim(media.UploadPrefix, "/"),
		ttl:     ttl,
		logger:  logger,
	}, nil
}

// SignUpload issues a time-boxed PUT signature for one object. Keys are
// namespaced per owner and salted with a UUID so uploads never collide or
// overwrite each other.
func (s *s3Signer) SignUpload(ctx context.Context, ownerUID, fileName, contentType string) (*service.UploadTicket, error) {
	key := s.objectKey(ownerUID, fileName)

	request, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.ttl
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to presign upload")
	}

	s.logger.Debug("Signed media upload",
		slog.String("owner_uid", ownerUID),
		slog.String("key", key),
	)

	headers := make(map[string]string, len(request.SignedHeader))
	for name, values := range request.SignedHeader {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}
	headers["Content-Type"] = contentType

	return &service.UploadTicket{
		UploadURL: request.URL,
		PublicURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key),
		Headers:   headers,
		ExpiresAt: time.Now().Add(s.ttl),
	}, nil
}

// objectKey builds "{prefix}/{ownerUID}/{uuid}{ext}"; the original file name
// contributes only its extension to keep keys URL-safe.
func (s *s3Signer) objectKey(ownerUID, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	name := uuid.NewString() + ext
	if s.prefix == "" {
		return path.Join(ownerUID, name)
	}

	return path.Join(s.prefix, ownerUID, name)
}
