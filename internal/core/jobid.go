package core

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"sync"
	"time"
)

const JobIDLength = sha1.Size * 2

// JobID hashes the label text followed by the decimal millisecond timestamp.
// It is not a content address: the same text at another instant yields a
// different ID.
func JobID(text string, unixMilli int64) string {
	h := sha1.New()
	h.Write([]byte(text))
	h.Write([]byte(strconv.FormatInt(unixMilli, 10)))
	return hex.EncodeToString(h.Sum(nil))
}

// JobIDGenerator never reuses a millisecond, so identical texts submitted
// together still land on distinct keys.
type JobIDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewJobIDGenerator() *JobIDGenerator {
	return &JobIDGenerator{now: time.Now}
}

func (g *JobIDGenerator) MakeJobID(text string) string {
	g.mu.Lock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	g.mu.Unlock()

	return JobID(text, ms)
}
