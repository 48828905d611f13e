package poi

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSolomonFile = `SAMPLE

VEHICLE
NUMBER     CAPACITY
  25         200

CUSTOMER
CUST NO.  XCOORD.   YCOORD.    DEMAND   READY TIME  DUE DATE   SERVICE TIME

    1      40         50          0          0       1236          0
    2      45         68         10        912        967         90
    3      45         70         30        825        870         90
`

func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleSolomonFile), 0o644))
	return path
}

func TestLoad_RemapsDepotAndIDs(t *testing.T) {
	path := writeSample(t)

	cat, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cat.Len())

	depot, ok := cat.Get(0)
	require.True(t, ok)
	assert.True(t, depot.IsDepot())
	assert.Equal(t, CategoryDepot, depot.Category)

	p1, ok := cat.Get(1)
	require.True(t, ok)
	assert.False(t, p1.IsDepot())
	assert.Equal(t, 10.0, p1.BaseScore)
	assert.Equal(t, 912.0, p1.OpenTime)
	assert.Equal(t, 967.0, p1.CloseTime)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoadCached_ReturnsOwnedCopies(t *testing.T) {
	cacheOnce = sync.Once{}
	cached = Catalog{}
	cacheErr = nil

	path := writeSample(t)

	c1, err := LoadCached(path)
	require.NoError(t, err)
	c2, err := LoadCached(path)
	require.NoError(t, err)

	c1.pois[1].BaseScore = 999

	p2, _ := c2.Get(1)
	assert.NotEqual(t, 999.0, p2.BaseScore)
}
