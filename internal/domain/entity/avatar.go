package entity

import (
	"fmt"
	"io"
	"mime"
	"path"
	"strconv"
	"strings"
	"time"
)

// MaxAvatarBytes is the largest accepted avatar upload (5 MiB).
const MaxAvatarBytes int64 = 5 * 1024 * 1024

// AvatarUpload is an image file selected for upload.
type AvatarUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// IsImage reports whether the declared MIME type is an image type.
func (a *AvatarUpload) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(a.ContentType)), "image/")
}

// Extension picks the file extension from the filename, falling back to the MIME subtype.
func (a *AvatarUpload) Extension() string {
	if ext := strings.TrimPrefix(path.Ext(a.Filename), "."); ext != "" {
		return strings.ToLower(ext)
	}

	mediaType, _, err := mime.ParseMediaType(a.ContentType)
	if err != nil {
		mediaType = a.ContentType
	}
	if _, subtype, ok := strings.Cut(mediaType, "/"); ok && subtype != "" {
		subtype, _, _ = strings.Cut(subtype, "+")

		return strings.ToLower(subtype)
	}

	return "img"
}

// AvatarObjectName is the object name of an avatar uploaded by uid at the given time.
func AvatarObjectName(uid string, at time.Time, ext string) string {
	return fmt.Sprintf("profile_%s_%d.%s", uid, at.UnixMilli(), ext)
}

// AvatarObjectPrefix is the prefix shared by every avatar uploaded by uid.
func AvatarObjectPrefix(pathPrefix, uid string) string {
	return pathPrefix + "profile_" + uid + "_"
}

// AvatarUploadedAt parses an object path produced for uid and returns its upload time.
// Paths of other identities, including ones whose UID merely starts with uid, do not match.
func AvatarUploadedAt(objectPath, pathPrefix, uid string) (time.Time, bool) {
	rest, ok := strings.CutPrefix(objectPath, AvatarObjectPrefix(pathPrefix, uid))
	if !ok {
		return time.Time{}, false
	}

	millis, ext, ok := strings.Cut(rest, ".")
	if !ok || millis == "" || ext == "" || strings.Contains(ext, "/") {
		return time.Time{}, false
	}

	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil || ms < 0 {
		return time.Time{}, false
	}

	return time.UnixMilli(ms), true
}
