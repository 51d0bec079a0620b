package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAvatarUpload_IsImage(t *testing.T) {
	assert.True(t, (&AvatarUpload{ContentType: "image/png"}).IsImage())
	assert.True(t, (&AvatarUpload{ContentType: " Image/JPEG "}).IsImage())
	assert.False(t, (&AvatarUpload{ContentType: "application/pdf"}).IsImage())
	assert.False(t, (&AvatarUpload{}).IsImage())
}

func TestAvatarUpload_Extension(t *testing.T) {
	tests := []struct {
		upload AvatarUpload
		want   string
	}{
		{upload: AvatarUpload{Filename: "me.JPG", ContentType: "image/jpeg"}, want: "jpg"},
		{upload: AvatarUpload{Filename: "blob", ContentType: "image/png"}, want: "png"},
		{upload: AvatarUpload{ContentType: "image/svg+xml"}, want: "svg"},
		{upload: AvatarUpload{}, want: "img"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.upload.Extension())
	}
}

func TestAvatarObjectName(t *testing.T) {
	at := time.UnixMilli(1700000000123)

	assert.Equal(t, "profile_u1_1700000000123.png", AvatarObjectName("u1", at, "png"))
	assert.Equal(t, "profile_images/profile_u1_", AvatarObjectPrefix("profile_images/", "u1"))
}

func TestAvatarUploadedAt(t *testing.T) {
	at, ok := AvatarUploadedAt("profile_images/profile_u1_1700000000123.png", "profile_images/", "u1")
	assert.True(t, ok)
	assert.Equal(t, time.UnixMilli(1700000000123), at)

	for _, path := range []string{
		"profile_images/profile_u1_x_1700000000123.png",
		"profile_images/profile_u2_1700000000123.png",
		"profile_images/profile_u1_1700000000123",
		"other/profile_u1_1700000000123.png",
	} {
		_, ok := AvatarUploadedAt(path, "profile_images/", "u1")
		assert.False(t, ok, path)
	}
}
