package service

import (
	"context"
	"time"

	"github.com/sarilacivert/matchcenter-service/cache"
	"github.com/sarilacivert/matchcenter-service/client"
)

// MediaService proxies image assets of the upstream media host so fan
// clients never talk to it directly. Assets are cached aggressively.
type MediaService struct {
	mediaClient  MediaClient
	cacheService cache.Service
	cacheTTL     time.Duration
	logger       Logger
}

func NewMediaService(mediaClient MediaClient, cacheService cache.Service, cacheTTL time.Duration, logger Logger) *MediaService {
	return &MediaService{
		mediaClient:  mediaClient,
		cacheService: cacheService,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

func (s *MediaService) GetAsset(ctx context.Context, path string) (*client.MediaAsset, error) {
	return cache.Fetch(ctx, s.cacheService, cache.MediaKey(path), s.cacheTTL, func(ctx context.Context) (*client.MediaAsset, error) {
		return s.mediaClient.GetAsset(ctx, path)
	})
}
