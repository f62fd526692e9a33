package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_T(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, "Refresh", c.T(MsgRefresh, nil))
	assert.Equal(t, "3 unavailable", c.T(MsgUnavailableCount, map[string]string{"count": "3"}))
	assert.Equal(t, "missing.key", c.T("missing.key", nil))
}

func TestCatalogs_HaveSameKeys(t *testing.T) {
	en := DefaultCatalog()
	zh := ChineseCatalog()
	assert.Len(t, zh, len(en))
	for key := range en {
		assert.Contains(t, zh, key)
	}
}

func TestCatalogFor(t *testing.T) {
	assert.Equal(t, ChineseCatalog(), CatalogFor("zh-CN"))
	assert.Equal(t, DefaultCatalog(), CatalogFor("en"))
	assert.Equal(t, DefaultCatalog(), CatalogFor("fr"))
}
