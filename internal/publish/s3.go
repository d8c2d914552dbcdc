package publish

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// S3Client defines the interface for S3 operations we need
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads the GeoJSON output to a fixed bucket and key
type S3Publisher struct {
	client     S3Client
	bucketName string
	key        string
}

func NewS3Publisher(client S3Client, bucketName, key string) *S3Publisher {
	return &S3Publisher{
		client:     client,
		bucketName: bucketName,
		key:        key,
	}
}

// Publish stores body under the configured key
func (p *S3Publisher) Publish(ctx context.Context, body []byte, contentType string) error {
	if p.bucketName == "" {
		return fmt.Errorf("empty bucket name")
	}
	if p.key == "" {
		return fmt.Errorf("empty object key")
	}

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucketName),
		Key:         aws.String(p.key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("saving to S3: %w", err)
	}

	log.Debug().
		Str("bucket", p.bucketName).
		Str("key", p.key).
		Int("bytes", len(body)).
		Msg("Published GeoJSON to S3")
	return nil
}
