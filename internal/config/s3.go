// internal/config/s3.go
package config

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the S3 client plus the buckets it serves
type S3Config struct {
	Client        *s3.Client
	Bucket        string
	PhotoBucket   string
	PublicBaseURL string
	Settings      S3Settings
}

// Enabled reports whether a client and a bucket are configured.
func (c *S3Config) Enabled() bool {
	return c != nil && c.Client != nil && c.Bucket != ""
}

// NewS3Config creates a new S3 configuration. Static credentials are used when
// both keys are set, otherwise the default AWS credential chain applies.
func NewS3Config(ctx context.Context, s S3Settings) (*S3Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(s.Region),
	}
	if s.AccessKeyID != "" && s.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.AccessKeyID, s.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	photoBucket := s.PhotoBucket
	if photoBucket == "" {
		photoBucket = s.Bucket
	}

	return &S3Config{
		Client:        s3.NewFromConfig(cfg),
		Bucket:        s.Bucket,
		PhotoBucket:   photoBucket,
		PublicBaseURL: s.PublicBaseURL,
		Settings:      s,
	}, nil
}
