package services

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"campaignadmin/internal/config"
)

const defaultPresignTTL = 15 * time.Minute

// PhotoSigner turns a stored photo id into a URL a browser can fetch.
type PhotoSigner interface {
	PhotoURL(ctx context.Context, photoID string) (string, error)
}

type objectPresigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3PhotoSigner presigns GET requests for submission photos.
type S3PhotoSigner struct {
	presigner objectPresigner
	bucket    string
	ttl       time.Duration
}

func NewS3PhotoSigner(cfg *config.S3Config) *S3PhotoSigner {
	ttl := cfg.Settings.PresignTTL
	if ttl <= 0 {
		ttl = defaultPresignTTL
	}
	return &S3PhotoSigner{
		presigner: s3.NewPresignClient(cfg.Client),
		bucket:    cfg.PhotoBucket,
		ttl:       ttl,
	}
}

func (s *S3PhotoSigner) PhotoURL(ctx context.Context, photoID string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(photoID),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
