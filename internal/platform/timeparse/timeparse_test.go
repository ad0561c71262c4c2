package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTimestamp struct{ ms int64 }

func (f fakeTimestamp) ToMillis() int64 { return f.ms }

func TestToMillis_Nil(t *testing.T) {
	assert.Equal(t, int64(0), ToMillis(nil))
}

func TestToMillis_Number(t *testing.T) {
	assert.Equal(t, int64(1700000000000), ToMillis(int64(1700000000000)))
	// encoding/json entrega números como float64
	assert.Equal(t, int64(1700000000000), ToMillis(float64(1700000000000)))
	assert.Equal(t, int64(42), ToMillis(42))
}

func TestToMillis_String(t *testing.T) {
	assert.Equal(t, int64(0), ToMillis("not a date"))

	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, want, ToMillis("2024-03-10"))

	want = time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC).UnixMilli()
	assert.Equal(t, want, ToMillis("2024-03-10T15:04:05Z"))
}

func TestToMillis_TimestampObject(t *testing.T) {
	assert.Equal(t, int64(123456), ToMillis(fakeTimestamp{ms: 123456}))
}

func TestToMillis_Time(t *testing.T) {
	now := time.Now()
	assert.Equal(t, now.UnixMilli(), ToMillis(now))
	assert.Equal(t, now.UnixMilli(), ToMillis(&now))

	var zero time.Time
	assert.Equal(t, int64(0), ToMillis(zero))

	var nilPtr *time.Time
	assert.Equal(t, int64(0), ToMillis(nilPtr))
}

func TestToMillis_Unrecognized(t *testing.T) {
	assert.Equal(t, int64(0), ToMillis(map[string]any{"seconds": 1}))
	assert.Equal(t, int64(0), ToMillis(struct{}{}))
}
