// Where: internal/infra/source/s3.go
// What: S3 object properties source.
// Why: Let CI pipelines keep key.properties in a bucket instead of the checkout.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/poruru-code/keyprops/internal/domain/signing"
)

// S3API is the subset of the S3 client used by the source.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Object reads a properties document from a bucket.
type S3Object struct {
	Bucket string
	Key    string
	Client S3API
}

// ParseS3URL splits s3://bucket/key into its parts.
func ParseS3URL(raw string) (bucket, key string, err error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("parse s3 url: %w", err)
	}
	if parsed.Scheme != "s3" {
		return "", "", fmt.Errorf("not an s3 url: %s", raw)
	}
	bucket = parsed.Host
	key = strings.TrimPrefix(parsed.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 url requires bucket and key: %s", raw)
	}
	return bucket, key, nil
}

func (o S3Object) Location() string {
	return "s3://" + o.Bucket + "/" + o.Key
}

func (o S3Object) Read(ctx context.Context) ([]byte, error) {
	if o.Client == nil {
		return nil, fmt.Errorf("s3 client is nil")
	}
	resp, err := o.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(o.Bucket),
		Key:    aws.String(o.Key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, fmt.Errorf("%w: %s", signing.ErrSourceNotFound, o.Location())
		}
		return nil, fmt.Errorf("get %s: %w", o.Location(), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", o.Location(), err)
	}
	return data, nil
}

func isS3NotFound(err error) bool {
	var noSuchKey *s3types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
