package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/lifeguardcard/triagecore/internal/model"
)

// Cache defines the interface for assessment caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// New builds the cache the config selects: layered when a disk
// directory is set, memory-only otherwise.
func New(cfg model.CacheConfig) Cache {
	if cfg.Dir != "" {
		return NewLayeredCache(cfg)
	}
	return NewMemoryCache(cfg)
}

// Key generates a cache key from an analysis request. The pipeline is
// deterministic for identical input, so the hash covers exactly the
// fields that influence the assessment.
func Key(req *model.AnalysisRequest) string {
	h := sha256.New()
	h.Write([]byte(req.Type))
	h.Write([]byte{0})

	switch req.Type {
	case model.ModalityText:
		h.Write([]byte(req.Text))
	case model.ModalityVoice:
		if req.Voice != nil {
			// The reported confidence is preserved on the finding, so
			// it is part of the input, not just metadata.
			h.Write([]byte(req.Voice.Transcript))
			h.Write([]byte{0})
			h.Write([]byte(strconv.FormatFloat(req.Voice.Confidence, 'g', -1, 64)))
		}
	case model.ModalityImage:
		if req.Image != nil {
			h.Write(req.Image.Data)
			h.Write([]byte{0})
			h.Write([]byte(req.Image.Format))
		}
	}

	return "triagecore:v1:" + hex.EncodeToString(h.Sum(nil))
}
