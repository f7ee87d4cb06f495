package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const photoURLExpiry = 5 * time.Minute

// PhotoSigner turns a stored photo reference into a URL a client can load.
type PhotoSigner interface {
	SignPhotoURL(ctx context.Context, photo string) (string, error)
}

// PassthroughPhotoSigner returns photos unchanged; used when no bucket is configured.
type PassthroughPhotoSigner struct{}

func (PassthroughPhotoSigner) SignPhotoURL(_ context.Context, photo string) (string, error) {
	return photo, nil
}

// S3PhotoSigner presigns read URLs for photos stored as S3 object keys
// (e.g. "profile-pics/20250101-me.jpg"). Absolute URLs pass through.
type S3PhotoSigner struct {
	Presigner *s3.PresignClient
	Bucket    string
}

// NewS3PhotoSigner builds a signer for bucket from a loaded AWS config
func NewS3PhotoSigner(cfg aws.Config, bucket string) *S3PhotoSigner {
	return &S3PhotoSigner{
		Presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		Bucket:    bucket,
	}
}

// SignPhotoURL generates a presigned URL for reading the photo object
func (ps *S3PhotoSigner) SignPhotoURL(ctx context.Context, photo string) (string, error) {
	if photo == "" || isAbsoluteURL(photo) {
		return photo, nil
	}

	params := &s3.GetObjectInput{
		Bucket: aws.String(ps.Bucket),
		Key:    aws.String(photo),
	}
	presignedURL, err := ps.Presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(photoURLExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign photo %q: %w", photo, err)
	}
	return presignedURL.URL, nil
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}
