package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartRefresherRejectsBadSchedule(t *testing.T) {
	loader := newTestLoader(writeDataset(t, `{"name":"Alpha Corp"}`))

	_, err := StartRefresher(loader, "not a cron expression", discardLogger())
	assert.Error(t, err)
}

func TestStartRefresherStops(t *testing.T) {
	loader := newTestLoader(writeDataset(t, `{"name":"Alpha Corp"}`))

	r, err := StartRefresher(loader, "@every 1h", discardLogger())
	require.NoError(t, err)
	r.Stop()
}
