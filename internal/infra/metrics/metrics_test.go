package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := NewRegistry()
	c := NewCollector(reg)

	c.RecordOperation("delete_account", "success")
	c.RecordOperation("delete_account", "success")
	c.RecordOperation("delete_account", "REQUIRES_RECENT_LOGIN")
	c.RecordStepFailure("delete_account", "avatar")
	c.RecordAvatarsSwept(3)
	c.RecordAvatarsSwept(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.operations.WithLabelValues("delete_account", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("delete_account", "REQUIRES_RECENT_LOGIN")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.stepFailures.WithLabelValues("delete_account", "avatar")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.avatarsSwept))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
