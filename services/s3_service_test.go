package services

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3PhotoSigner(t *testing.T) {
	client := s3.New(s3.Options{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "secret", ""),
	})
	signer := &S3PhotoSigner{Presigner: s3.NewPresignClient(client), Bucket: "vibin-photos"}
	ctx := context.Background()

	t.Run("object key is presigned", func(t *testing.T) {
		url, err := signer.SignPhotoURL(ctx, "profile-pics/alex.jpg")
		require.NoError(t, err)
		assert.Contains(t, url, "vibin-photos")
		assert.Contains(t, url, "profile-pics/alex.jpg")
		assert.Contains(t, url, "X-Amz-Signature=")
		assert.Contains(t, url, "X-Amz-Expires=300")
	})

	t.Run("absolute url passes through", func(t *testing.T) {
		url, err := signer.SignPhotoURL(ctx, "https://cdn.example.com/a.jpg")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/a.jpg", url)
	})

	t.Run("empty stays empty", func(t *testing.T) {
		url, err := signer.SignPhotoURL(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, url)
	})
}
