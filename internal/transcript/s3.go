package transcript

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3GetObjectAPI is the part of the S3 client the source needs.
type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Object reads a transcript uploaded to a bucket.
type S3Object struct {
	Client S3GetObjectAPI
	Bucket string
	Key    string
}

func (o S3Object) Text(ctx context.Context) (string, error) {
	out, err := o.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(o.Bucket),
		Key:    aws.String(o.Key),
	})
	if err != nil {
		return "", fmt.Errorf("[Transcript] failed to get s3://%s/%s: %w", o.Bucket, o.Key, err)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return "", fmt.Errorf("[Transcript] failed to read s3://%s/%s: %w", o.Bucket, o.Key, err)
	}

	slog.Info("[Transcript] Downloaded transcript from S3",
		slog.String("bucket", o.Bucket),
		slog.String("key", o.Key),
		slog.Int("bytes", len(content)))

	return decode(o.Key, content)
}
