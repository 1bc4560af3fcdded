package assets

import (
	"testing"

	"github.com/automoto/runnin-gunner/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCampaignLoads(t *testing.T) {
	campaign, err := LoadCampaign()
	require.NoError(t, err)
	require.Greater(t, campaign.Len(), 1)

	assert.True(t, campaign.Entry(0).Tutorial)
	assert.True(t, campaign.Entry(campaign.Len()-1).Final)

	for i := 0; i < campaign.Len(); i++ {
		level, err := campaign.Load(Levels(), i)
		require.NoError(t, err, campaign.Path(i))

		_, ok := level.PlayerSpawn()
		assert.True(t, ok, level.Name)
		assert.Len(t, level.Spawns[config.KindPlayer], 1, level.Name)
		assert.NotEmpty(t, level.SolidRects, level.Name)

		if !campaign.Entry(i).Final {
			assert.Len(t, level.Spawns[config.KindDoor], 1, level.Name)
		}
	}
}

func TestTutorialHasMessages(t *testing.T) {
	campaign, err := LoadCampaign()
	require.NoError(t, err)

	level, err := campaign.Load(Levels(), 0)
	require.NoError(t, err)
	assert.NotEmpty(t, level.Messages)
	assert.Equal(t, "Runnin' Gunner", level.Messages[0].Text)
}
