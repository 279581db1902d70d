package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rrparlour/parlour-booking/internal/config"
)

const s3KeyPrefix = "hairstyles/"

// S3Store keeps uploads in a bucket and records the public object URL.
type S3Store struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Store(cfg *config.Config) *S3Store {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.AWSAccessKeyID,
				cfg.AWSSecretAccessKey,
				"",
			),
		),
	})

	return &S3Store{
		client: client,
		bucket: cfg.S3Bucket,
		region: cfg.S3Region,
	}
}

func (s *S3Store) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	key := s3KeyPrefix + uniqueName(name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
