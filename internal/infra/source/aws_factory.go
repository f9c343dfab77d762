// Where: internal/infra/source/aws_factory.go
// What: S3 client factory.
// Why: Encapsulate SDK configuration, including custom endpoints and static keys.
package source

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/poruru-code/keyprops/internal/constants"
	"github.com/poruru-code/keyprops/internal/infra/envutil"
)

const defaultAWSRegion = "us-east-1"

// S3Factory builds an S3 client on demand.
type S3Factory func(ctx context.Context) (S3API, error)

// NewS3Client loads the default AWS config with keyprops overrides.
// KEYPROPS_S3_ENDPOINT switches to path-style addressing for S3-compatible stores.
func NewS3Client(ctx context.Context) (S3API, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(s3Region()),
	}
	accessKey := envutil.Get(constants.EnvS3AccessKey)
	secretKey := envutil.Get(constants.EnvS3SecretKey)
	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := envutil.Get(constants.EnvS3Endpoint)
	client := s3.NewFromConfig(cfg, func(options *s3.Options) {
		if endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
			options.UsePathStyle = true
		}
	})
	return client, nil
}

func s3Region() string {
	if region := envutil.First(constants.EnvS3Region, constants.EnvAWSRegion); region != "" {
		return region
	}
	return defaultAWSRegion
}
