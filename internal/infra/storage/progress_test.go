package storage

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressReader_ReportsWholePercents(t *testing.T) {
	const size = 5 * 1024 * 1024
	content := bytes.Repeat([]byte("x"), size)

	var percents []int64
	r := newProgressReader(iotest.HalfReader(bytes.NewReader(content)), size, func(transferred, total int64) {
		percents = append(percents, transferred*100/total)
	})

	buf := make([]byte, 32*1024)
	for {
		_, err := r.Read(buf)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}

	require.NotEmpty(t, percents)
	assert.LessOrEqual(t, len(percents), 101)
	assert.Equal(t, int64(100), percents[len(percents)-1])
	for i := 1; i < len(percents); i++ {
		assert.Greater(t, percents[i], percents[i-1])
	}
}

func TestWholePercent(t *testing.T) {
	var calls [][2]int64
	progress := wholePercent(func(transferred, total int64) {
		calls = append(calls, [2]int64{transferred, total})
	})

	progress(0, 0)
	progress(1, 1000)
	progress(5, 1000)
	progress(10, 1000)
	progress(19, 1000)
	progress(1000, 1000)
	progress(1000, 1000)

	assert.Equal(t, [][2]int64{{1, 1000}, {10, 1000}, {1000, 1000}}, calls)
	assert.Nil(t, wholePercent(nil))
}
