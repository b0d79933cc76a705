package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"

	"banana-farm-api/internal/pkg/config"
	"banana-farm-api/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader stores farm images in S3 and returns a public URL, preferring
// the CloudFront domain when one is configured.
type Uploader struct {
	client           *s3.Client
	bucket           string
	region           string
	cloudFrontDomain string
}

func NewUploader(cfg config.StorageConfig) (*Uploader, error) {
	sdkConfig, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load AWS config")
	}

	return &Uploader{
		client:           s3.NewFromConfig(sdkConfig),
		bucket:           cfg.Bucket,
		region:           cfg.Region,
		cloudFrontDomain: cfg.CloudFrontDomain,
	}, nil
}

func (u *Uploader) UploadFile(ctx context.Context, file io.Reader, objectKey string) (string, error) {
	contentType := mime.TypeByExtension(path.Ext(objectKey))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(objectKey),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to upload file to S3")
	}

	if u.cloudFrontDomain != "" {
		return fmt.Sprintf("https://%s/%s", u.cloudFrontDomain, objectKey), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, objectKey), nil
}
