package s3backup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetObjectKey(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	assert.Equal(t, "uploads/2026/09/photo.jpg", cfg.GetObjectKey("photo.jpg", 2026, 9))
	assert.Equal(t, "uploads/2026/12/a.png", cfg.GetObjectKey("a.png", 2026, 12))
}

func TestLoadConfigDisabledByDefault(t *testing.T) {
	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.False(t, cfg.IsEnabled())
}

func TestLoadConfigEnabled(t *testing.T) {
	t.Setenv("S3_BACKUP_ENABLED", "true")
	t.Setenv("S3_ACCESS_KEY_ID", "key")
	t.Setenv("S3_SECRET_ACCESS_KEY", "secret")
	t.Setenv("S3_BUCKET_NAME", "bucket")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.True(t, cfg.IsEnabled())
	assert.Equal(t, "bucket", cfg.GetBucketName())
}

func TestLoadConfigEnabledRequiresCredentials(t *testing.T) {
	t.Setenv("S3_BACKUP_ENABLED", "true")
	t.Setenv("S3_ACCESS_KEY_ID", "")
	t.Setenv("S3_SECRET_ACCESS_KEY", "")
	t.Setenv("S3_BUCKET_NAME", "")

	_, err := LoadConfig()

	assert.Error(t, err)
}
