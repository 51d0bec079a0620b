// Package storage implements the avatar object stores: Firebase Storage and gocloud.dev buckets.
package storage

import (
	"io"

	"recipebox/internal/domain/service"
)

// wholePercent wraps progress so it only fires when the transferred share
// crosses into a new whole percent, at most 101 times per upload.
// Reports without a known total are dropped.
func wholePercent(progress service.ProgressFunc) service.ProgressFunc {
	if progress == nil {
		return nil
	}

	last := int64(-1)

	return func(transferred, total int64) {
		if total <= 0 {
			return
		}
		percent := min(transferred*100/total, 100)
		if percent <= last {
			return
		}
		last = percent
		progress(transferred, total)
	}
}

// progressReader reports the bytes read so far to a ProgressFunc.
type progressReader struct {
	r        io.Reader
	total    int64
	read     int64
	progress service.ProgressFunc
}

func newProgressReader(r io.Reader, total int64, progress service.ProgressFunc) io.Reader {
	if progress == nil {
		return r
	}

	return &progressReader{r: r, total: total, progress: wholePercent(progress)}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		p.progress(p.read, p.total)
	}

	return n, err
}
