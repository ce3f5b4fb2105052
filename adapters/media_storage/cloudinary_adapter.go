package media_storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/vedag812/netfolio-api/internal/application/service"
	"github.com/vedag812/netfolio-api/internal/config"
)

// cloudinaryAdapter stores content documents as raw assets. Cloudinary is
// the durable medium on hosts with an ephemeral filesystem.
type cloudinaryAdapter struct {
	cld  *cloudinary.Cloudinary
	http *http.Client
}

func NewCloudinaryAdapter(cfg config.Config) (service.ObjectStore, error) {

	if cfg.Cloudinary.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud_name has not config")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}

	return &cloudinaryAdapter{
		cld:  cld,
		http: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (a *cloudinaryAdapter) Put(ctx context.Context, publicID string, data []byte) (string, error) {
	result, err := a.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     publicID,
		ResourceType: "raw",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload cloudinary: %w", err)
	}
	return result.SecureURL, nil
}

func (a *cloudinaryAdapter) Latest(ctx context.Context, prefix string) ([]byte, bool, error) {
	res, err := a.cld.Admin.Assets(ctx, admin.AssetsParams{
		AssetType:  api.File,
		Prefix:     prefix,
		MaxResults: 100,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to list cloudinary assets: %w", err)
	}
	if len(res.Assets) == 0 {
		return nil, false, nil
	}

	assets := res.Assets
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].CreatedAt.After(assets[j].CreatedAt)
	})

	body, err := a.fetch(ctx, assets[0].SecureURL)
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

func (a *cloudinaryAdapter) Purge(ctx context.Context, prefix string) error {
	_, err := a.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix:    api.CldAPIArray{prefix},
		AssetType: api.File,
	})
	if err != nil {
		return fmt.Errorf("failed to delete cloudinary assets: %w", err)
	}
	return nil
}

func (a *cloudinaryAdapter) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cloudinary asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cloudinary asset fetch returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
