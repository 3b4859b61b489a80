package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryProvider keeps resumes as raw assets whose public id is the key.
type CloudinaryProvider struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryProvider(cld *cloudinary.Cloudinary) *CloudinaryProvider {
	return &CloudinaryProvider{cld: cld}
}

func (p *CloudinaryProvider) Put(ctx context.Context, key string, body io.ReadSeeker, _ string) error {
	_, err := p.cld.Upload.Upload(ctx, body, uploader.UploadParams{
		PublicID:     key,
		ResourceType: "raw",
		Overwrite:    api.Bool(true),
	})
	return err
}

func (p *CloudinaryProvider) Delete(ctx context.Context, key string) error {
	_, err := p.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     key,
		ResourceType: "raw",
	})
	return err
}

func (p *CloudinaryProvider) URL(key string) string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/raw/upload/%s", p.cld.Config.Cloud.CloudName, key)
}
