package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/nzbio/internal/constants"
	apperrors "github.com/amaumene/nzbio/internal/errors"
	"github.com/amaumene/nzbio/internal/models"
)

func (h *Handler) handleStream(c *gin.Context) {
	kind := c.Param("type")
	if !isSupportedType(kind) {
		h.handleManifest(c)
		return
	}

	id := c.Param("id")
	log := h.services.Logger

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[StreamHandler] panic while handling %s/%s: %v", kind, id, r)
			h.respondEmpty(c)
		}
	}()

	timeout := h.config.RequestTimeout
	if timeout <= 0 {
		timeout = constants.RequestTimeout
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	ref, err := parseStreamID(kind, id)
	if err != nil {
		log.Warnf("[StreamHandler] rejecting %s request: %v", kind, err)
		h.respondEmpty(c)
		return
	}

	log.Infof("[StreamHandler] stream request: %s", ref)

	meta, err := h.services.Metadata.Resolve(ctx, ref.ExternalID)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeMetadataNotFound) {
			log.Infof("[StreamHandler] no TMDB metadata found for %s", ref.ExternalID)
		} else {
			log.Errorf("[StreamHandler] failed to resolve %s: %v", ref.ExternalID, err)
		}
		h.respondEmpty(c)
		return
	}

	log.Infof("[StreamHandler] found metadata: %s (%s)", meta.Title, meta.Year)

	items := h.services.Search.Search(ctx, *meta, ref)
	if ctx.Err() == context.DeadlineExceeded {
		log.Errorf("[StreamHandler] request timeout for %s", ref)
	}

	streams := BuildStreams(items, *meta)
	log.Infof("[StreamHandler] returning %d streams for %s", len(streams), ref)
	h.respondStreams(c, streams)
}

func (h *Handler) respondStreams(c *gin.Context, streams []models.Stream) {
	h.services.Metrics.ObserveStreams(len(streams))
	writeJSON(c, http.StatusOK, models.StreamResponse{Streams: streams})
}

func (h *Handler) respondEmpty(c *gin.Context) {
	h.services.Metrics.ObserveStreams(0)
	writeJSON(c, http.StatusOK, models.EmptyStreamResponse())
}
