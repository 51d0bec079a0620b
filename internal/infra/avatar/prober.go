package avatar

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"recipebox/config"
	"recipebox/internal/domain/service"
)

const defaultProbeTimeout = 3 * time.Second

type prober struct {
	store      service.ObjectStore
	httpClient *http.Client
	logger     *slog.Logger
}

// NewProber checks stored avatars through the object store and any other reference with an HTTP HEAD.
func NewProber(cfg *config.Config, store service.ObjectStore, logger *slog.Logger) service.AvatarProber {
	timeout := defaultProbeTimeout
	if cfg.Avatar != nil && cfg.Avatar.ProbeTimeout > 0 {
		timeout = cfg.Avatar.ProbeTimeout
	}

	return &prober{
		store:      store,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Probe reports whether ref still resolves to an image. Any failure counts as broken.
func (p *prober) Probe(ctx context.Context, ref string) bool {
	if strings.TrimSpace(ref) == "" {
		return false
	}

	if p.store.Owns(ref) {
		exists, err := p.store.Exists(ctx, ref)
		if err != nil {
			p.logger.WarnContext(ctx, "Avatar existence check failed",
				slog.String("ref", ref),
				slog.Any("error", err),
			)

			return false
		}

		return exists
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, ref, nil)
	if err != nil {
		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.DebugContext(ctx, "Avatar probe failed", slog.String("ref", ref), slog.Any("error", err))

		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))

	return err == nil && strings.HasPrefix(mediaType, "image/")
}
