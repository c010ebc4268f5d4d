package storage

// Note: use requires a ~/.aws/credentials file — see
// https://docs.aws.amazon.com/sdk-for-go/v1/developer-guide/configuring-sdk.html#specifying-credentials

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type s3Writer struct {
	svc    *s3.S3
	bucket string
}

func newS3(path string) (Writer, error) {
	region, bucket, ok := strings.Cut(path, ":")
	if !ok {
		return nil, fmt.Errorf(`storage: s3 target %q does not have expected format "<region>:<bucket>"`, path)
	}
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, fmt.Errorf("storage: creating aws session: %w", err)
	}
	return &s3Writer{svc: s3.New(sess), bucket: bucket}, nil
}

func (w *s3Writer) Download(ctx context.Context, url, filePath string) error {
	rec, err := fetch(ctx, url)
	if err != nil {
		return err
	}
	return w.put(ctx, filePath, rec.Content, rec.ContentType)
}

func (w *s3Writer) Save(filePath string, content []byte) error {
	return w.put(context.Background(), filePath, content, "")
}

func (w *s3Writer) put(ctx context.Context, key string, content []byte, contentType string) error {
	obj := &s3.PutObjectInput{
		Bucket: aws.String(w.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(content),
	}
	if contentType != "" {
		obj.SetContentType(contentType)
	}
	_, err := w.svc.PutObjectWithContext(ctx, obj)
	return err
}

func (w *s3Writer) Close() error { return nil }

func init() {
	register("s3", newS3)
}
