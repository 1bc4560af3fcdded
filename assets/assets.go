// Package assets embeds the level maps and the campaign list.
package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/runnin-gunner/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// CampaignPath is the campaign list inside Levels().
const CampaignPath = "levels/campaign.yaml"

// Levels returns the embedded level filesystem.
func Levels() fs.FS {
	return assetFS
}

// LoadCampaign reads the embedded campaign list.
func LoadCampaign() (*leveldata.Campaign, error) {
	return leveldata.LoadCampaign(assetFS, CampaignPath)
}
