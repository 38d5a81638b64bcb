package store

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const audioContentType = "audio/mpeg"

// S3Audio uploads audio artifacts to an S3 bucket. It is the alternative to
// the Appwrite bucket backend and uses the standard AWS config/credential
// chain.
type S3Audio struct {
	client *s3.Client
	bucket string
	region string
}

// NewS3Audio creates an S3-backed audio store. If region is empty, AWS
// defaults apply.
func NewS3Audio(ctx context.Context, bucket, region string) (*S3Audio, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "loading AWS config")
	}
	if region == "" {
		region = awsCfg.Region
	}

	return &S3Audio{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		region: region,
	}, nil
}

// Upload puts the file under a generated key and returns its public URL.
func (s *S3Audio) Upload(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "opening audio artifact")
	}
	defer f.Close()

	key := fmt.Sprintf("audio/%s.mp3", uuid.NewString())
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(audioContentType),
	})
	if err != nil {
		return "", errors.Wrap(err, "uploading audio artifact")
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
