package site_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlieallen/portfolio/pkg/content"
	"github.com/charlieallen/portfolio/site"
)

func TestEmbeddedSiteLoads(t *testing.T) {
	t.Parallel()

	s, err := content.Load(site.FS)
	require.NoError(t, err)

	assert.Equal(t, "Charlie Allen", s.Name)
	assert.Equal(t, "https://charlieallen.dev", s.BaseURL)
	assert.Len(t, s.Nav, 4)
	assert.Len(t, s.Highlights, 3)
	assert.Len(t, s.Skills, 4)
	assert.Equal(t, "hello@charlieallen.dev", s.Contact.Email)

	require.Len(t, s.Projects, 3)
	assert.Equal(t, "never-forget", s.Projects[0].Slug)
	assert.Equal(t, "this-website", s.Projects[2].Slug)
	require.Len(t, s.Schemas(), 1)
	assert.Equal(t, "Never Forget", s.Schemas()[0]["name"])

	assert.Equal(t, "About | Shopify & WhatsApp Integrations", s.PageTitle(s.About.Title))
}
