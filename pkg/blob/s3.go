package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store keeps objects in an S3 bucket. It exists for deployments
// without a persistent local disk; the disk store stays the default.
type S3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Store builds an S3-backed store using the default AWS
// credential chain. publicBaseURL is the externally reachable base the
// bucket is served from (CDN or website endpoint); when empty the
// virtual-hosted bucket URL is used.
func NewS3Store(ctx context.Context, bucket, region, publicBaseURL string) (*S3Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("S3 bucket name is required")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &S3Store{
		client:        s3.NewFromConfig(cfg),
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

// Put uploads the object in one PutObject call; S3 makes the object
// visible only once the whole upload succeeds.
func (s *S3Store) Put(ctx context.Context, name string, r io.Reader) (int64, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read upload stream: %w", err)
	}
	if len(body) == 0 {
		return 0, ErrEmptyObject
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
		Body:   bytes.NewReader(body),
	})
	if err != nil {
		return 0, fmt.Errorf("upload %s to S3: %w", name, err)
	}
	return int64(len(body)), nil
}

// URL joins the public base URL with the stored name
func (s *S3Store) URL(name string) string {
	return s.publicBaseURL + "/" + name
}

var _ Store = (*S3Store)(nil)
