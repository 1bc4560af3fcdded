package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

var ErrNoLevels = errors.New("campaign has no levels")

// CampaignLevel is one entry of the level list.
type CampaignLevel struct {
	File     string `yaml:"file"`
	Title    string `yaml:"title"`
	Tutorial bool   `yaml:"tutorial"`
	Final    bool   `yaml:"final"`
}

// Campaign is the ordered list of levels played in sequence.
type Campaign struct {
	Dir    string          `yaml:"-"`
	Levels []CampaignLevel `yaml:"levels"`
}

// LoadCampaign reads a campaign YAML file. Level files are resolved relative
// to the campaign file's directory.
func LoadCampaign(fsys fs.FS, campaignPath string) (*Campaign, error) {
	data, err := fs.ReadFile(fsys, campaignPath)
	if err != nil {
		return nil, fmt.Errorf("read campaign %s: %w", campaignPath, err)
	}
	var c Campaign
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse campaign %s: %w", campaignPath, err)
	}
	if len(c.Levels) == 0 {
		return nil, fmt.Errorf("%s: %w", campaignPath, ErrNoLevels)
	}
	c.Dir = path.Dir(campaignPath)
	return &c, nil
}

// Len returns the number of levels.
func (c *Campaign) Len() int {
	return len(c.Levels)
}

// Wrap maps any index onto the campaign, wrapping past the end.
func (c *Campaign) Wrap(i int) int {
	n := len(c.Levels)
	return ((i % n) + n) % n
}

// Path returns the TMX path of level i.
func (c *Campaign) Path(i int) string {
	return path.Join(c.Dir, c.Levels[c.Wrap(i)].File)
}

// Entry returns the campaign entry of level i.
func (c *Campaign) Entry(i int) CampaignLevel {
	return c.Levels[c.Wrap(i)]
}

// Load parses level i.
func (c *Campaign) Load(fsys fs.FS, i int) (*Level, error) {
	return Load(fsys, c.Path(i))
}
