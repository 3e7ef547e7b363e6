package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtoRoundTrip(t *testing.T) {
	d := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	ts := ToProto(&d)
	require.NotNil(t, ts)
	got := FromProto(ts)
	require.NotNil(t, got)
	assert.True(t, d.Equal(*got))
	assert.Equal(t, "2025-03-14", FormatProto(ts))
}

func TestProtoNil(t *testing.T) {
	assert.Nil(t, ToProto(nil))
	assert.Nil(t, ToProto(&time.Time{}))
	assert.Nil(t, FromProto(nil))
	assert.Equal(t, "", FormatProto(nil))
}
