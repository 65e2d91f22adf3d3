package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345/resourcebooking/abc-room.png", "resourcebooking/abc-room"},
		{"https://res.cloudinary.com/demo/image/upload/resourcebooking/abc.jpg", "resourcebooking/abc"},
		{"https://res.cloudinary.com/demo/image/upload/c_fill,w_200/v1/x/y.webp", "x/y"},
		{"resourcebooking/abc", "resourcebooking/abc"},
		{"https://example.com/static/abc.png", ""},
		{"", ""},
	}
	for _, tt := range cases {
		if got := PublicIDFromURL(tt.in); got != tt.want {
			t.Fatalf("PublicIDFromURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewPublicIDKeepsReadableStem(t *testing.T) {
	id := newPublicID("C:\\photos\\Lab Room #2.PNG")
	if !strings.HasSuffix(id, "-Lab-Room-2") {
		t.Fatalf("newPublicID = %q", id)
	}
	if a, b := newPublicID("x.png"), newPublicID("x.png"); a == b {
		t.Fatalf("public ids must be unique, got %q twice", a)
	}
}

type fakeAPI struct {
	uploaded  uploader.UploadParams
	destroyed string
	result    string
}

func (f *fakeAPI) Upload(_ context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	if _, err := io.ReadAll(file.(io.Reader)); err != nil {
		return nil, err
	}
	f.uploaded = params
	return &uploader.UploadResult{
		PublicID:  params.Folder + "/" + params.PublicID,
		SecureURL: "https://res.cloudinary.com/demo/image/upload/v1/" + params.Folder + "/" + params.PublicID + ".png",
	}, nil
}

func (f *fakeAPI) Destroy(_ context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error) {
	f.destroyed = params.PublicID
	return &uploader.DestroyResult{Result: f.result}, nil
}

func TestCloudinaryStorageRoundTrip(t *testing.T) {
	api := &fakeAPI{result: "ok"}
	s := &CloudinaryStorage{api: api, folder: "rb", logger: zap.NewNop()}

	url, err := s.Upload(context.Background(), strings.NewReader("png-bytes"), "room.png")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if api.uploaded.Folder != "rb" {
		t.Fatalf("folder = %q, want rb", api.uploaded.Folder)
	}

	ok, err := s.Delete(context.Background(), url)
	if err != nil || !ok {
		t.Fatalf("Delete = %v, %v", ok, err)
	}
	if api.destroyed != "rb/"+api.uploaded.PublicID {
		t.Fatalf("destroyed %q, want rb/%s", api.destroyed, api.uploaded.PublicID)
	}

	api.result = "not found"
	if ok, _ := s.Delete(context.Background(), "rb/missing"); ok {
		t.Fatalf("Delete of a missing image should report false")
	}
}

func TestDisabledStorage(t *testing.T) {
	if _, err := (Disabled{}).Upload(context.Background(), strings.NewReader(""), "a.png"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}
