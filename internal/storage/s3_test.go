package storage

import (
	"context"
	"fitsync/fitsync-ai/internal/config"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "https://minio:9000", endpointURL("minio:9000", true))
	assert.Equal(t, "http://minio:9000", endpointURL("minio:9000", false))
	assert.Equal(t, "http://localhost:9000", endpointURL("http://localhost:9000", true))
	assert.Equal(t, "https://s3.example.com", endpointURL("https://s3.example.com", false))
}

func TestPresignedDownloadURLIsLocal(t *testing.T) {
	fs, err := NewS3Storage(context.Background(), config.S3Config{
		Endpoint:        "localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		BucketName:      "plans",
		UseSSL:          false,
	})
	require.NoError(t, err)

	url, err := fs.GeneratePresignedDownloadURL(context.Background(), "plans/abc.md", time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/plans/plans/abc.md?"), url)
	assert.Contains(t, url, "X-Amz-Expires=60")
}
