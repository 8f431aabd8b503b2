package storage

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	base, err := url.Parse("https://cdn.example.com/assets/")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/assets/placement-snapshots/tournament_1/a.json", publicURL(base, "placement-snapshots/tournament_1/a.json"))
	assert.Equal(t, "https://cdn.example.com/assets/a.json", publicURL(base, "/a.json"))
	assert.Empty(t, publicURL(base, ""))
	assert.Empty(t, publicURL(nil, "a.json"))
}

func TestNewCloudflareR2Uploader_RequiresCompleteConfig(t *testing.T) {
	_, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{AccountID: "acc"})
	assert.Error(t, err)
}

func TestNewCloudflareR2Uploader(t *testing.T) {
	uploader, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{
		AccountID:       "acc",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "bucket",
		PublicBaseURL:   "https://cdn.example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/x/y.json", uploader.GetPublicURL("x/y.json"))
}
