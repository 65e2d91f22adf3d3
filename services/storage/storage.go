package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// assetAPI is the part of the Cloudinary upload API we use.
type assetAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	api    assetAPI
	folder string
	logger *zap.Logger
}

// NewCloudinaryStorage creates a CloudinaryStorage that uploads into folder.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret, folder string, logger *zap.Logger) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	logger.Info("Cloudinary storage initialized", zap.String("cloudName", cloudName), zap.String("folder", folder))
	return &CloudinaryStorage{api: &cld.Upload, folder: folder, logger: logger}, nil
}

// Upload stores the image under a fresh public ID derived from filename.
func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	params := uploader.UploadParams{
		Folder:   s.folder,
		PublicID: newPublicID(filename),
	}
	result, err := s.api.Upload(ctx, file, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("failed to upload image: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("failed to upload image: no URL returned")
	}
	s.logger.Debug("Image uploaded", zap.String("publicID", result.PublicID))
	return result.SecureURL, nil
}

// Delete removes the image named by a delivery URL or public ID.
func (s *CloudinaryStorage) Delete(ctx context.Context, urlOrPublicID string) (bool, error) {
	publicID := PublicIDFromURL(urlOrPublicID)
	if publicID == "" {
		return false, nil
	}
	result, err := s.api.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return false, fmt.Errorf("failed to delete image %s: %w", publicID, err)
	}
	if result.Error.Message != "" {
		return false, fmt.Errorf("failed to delete image %s: %s", publicID, result.Error.Message)
	}
	s.logger.Debug("Image delete requested", zap.String("publicID", publicID), zap.String("result", result.Result))
	return result.Result == "ok", nil
}

var (
	versionSegment = regexp.MustCompile(`^v\d+$`)
	unsafeChars    = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)
)

// PublicIDFromURL extracts the public ID from a Cloudinary delivery URL such
// as https://res.cloudinary.com/demo/image/upload/v1712/folder/name.png
// ("folder/name"). Values that are not URLs are returned unchanged.
func PublicIDFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	p := u.Path
	idx := strings.Index(p, "/upload/")
	if idx < 0 {
		return ""
	}
	segments := strings.Split(strings.Trim(p[idx+len("/upload/"):], "/"), "/")
	for i, seg := range segments {
		if versionSegment.MatchString(seg) {
			segments = segments[i+1:]
			break
		}
	}
	if len(segments) == 0 {
		return ""
	}
	last := segments[len(segments)-1]
	segments[len(segments)-1] = strings.TrimSuffix(last, path.Ext(last))
	return strings.Join(segments, "/")
}

// newPublicID keeps a readable stem of the original filename and prefixes it
// with a uuid so uploads never overwrite each other.
func newPublicID(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	stem := unsafeChars.ReplaceAllString(strings.TrimSuffix(base, path.Ext(base)), "-")
	stem = strings.Trim(stem, "-")
	if stem == "" || stem == "." {
		return uuid.NewString()
	}
	return uuid.NewString() + "-" + stem
}
