package persistent

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/velenyx/sporthub/pkg/s3client"
)

// ObjectRepo addresses buckets per call because the pipeline writes to
// more than one logical namespace (profile pictures, player cards).
type ObjectRepo struct {
	*s3client.S3Client
}

func NewObjectRepo(s3c *s3client.S3Client) *ObjectRepo {
	return &ObjectRepo{s3c}
}

func (r *ObjectRepo) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	b := bytes.NewReader(data)

	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          b,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("ObjectRepo - Upload - r.Client.PutObject: %w", err)
	}

	return nil
}

func (r *ObjectRepo) DownloadBytes(ctx context.Context, bucket, key string) ([]byte, error) {
	result, err := r.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("ObjectRepo - DownloadBytes - r.Client.GetObject: %w", err)
	}
	defer result.Body.Close()

	b, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("ObjectRepo - DownloadBytes - io.ReadAll: %w", err)
	}

	return b, nil
}

func (r *ObjectRepo) Remove(ctx context.Context, bucket string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(key)})
	}

	_, err := r.Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &types.Delete{Objects: objects},
	})
	if err != nil {
		return fmt.Errorf("ObjectRepo - Remove - r.Client.DeleteObjects: %w", err)
	}

	return nil
}

func (r *ObjectRepo) PublicURL(bucket, key string) (string, error) {
	url, err := r.ObjectURL(bucket, key)
	if err != nil {
		return "", fmt.Errorf("ObjectRepo - PublicURL - r.ObjectURL: %w", err)
	}

	return url, nil
}
