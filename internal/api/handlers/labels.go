package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/orrn/labelhook/internal/api/middleware"
	"github.com/orrn/labelhook/internal/core"
)

const (
	msgOK          = "OK"
	msgBadRequest  = "Bad Request"
	msgLabelFailed = "Could not save label to database"
	msgBatchFailed = "Could not save label(s) to database"
)

type BatchRequest struct {
	Items json.RawMessage `json:"items"`
}

type LabelHandler struct {
	submitter *core.Submitter
	logger    *zap.Logger
}

func NewLabelHandler(submitter *core.Submitter, logger *zap.Logger) *LabelHandler {
	return &LabelHandler{
		submitter: submitter,
		logger:    logger,
	}
}

func (h *LabelHandler) PrintLabel(c *gin.Context) {
	var req core.LabelRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil || req.Body == "" {
		c.String(http.StatusBadRequest, msgBadRequest)
		return
	}

	job, err := h.submitter.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidRequest) {
			c.String(http.StatusBadRequest, msgBadRequest)
			return
		}
		c.Error(err)
		h.logger.Error("failed to save label",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err))
		c.String(http.StatusServiceUnavailable, msgLabelFailed)
		return
	}

	h.logger.Info("label saved",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("job_id", job.ID),
		zap.Int("qty", job.Quantity))
	c.String(http.StatusOK, msgOK)
}

func (h *LabelHandler) PrintBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.String(http.StatusBadRequest, msgBadRequest)
		return
	}

	items, ok := decodeItems(req.Items)
	if !ok {
		c.String(http.StatusBadRequest, msgBadRequest)
		return
	}

	result, err := h.submitter.SubmitBatch(c.Request.Context(), items)
	fields := []zap.Field{
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Int("items", len(items)),
		zap.Int("written", result.Written),
		zap.Int("invalid", result.Invalid),
		zap.Int("failed", result.Failed),
	}
	if err != nil {
		c.Error(err)
		h.logger.Error("failed to save batch", append(fields, zap.Error(err))...)
		c.String(http.StatusServiceUnavailable, msgBatchFailed)
		return
	}

	h.logger.Info("batch saved", fields...)
	c.String(http.StatusOK, msgOK)
}

// decodeItems reports false when raw is not a JSON array. Elements that are
// not label objects come back as nil so they count as failed items.
func decodeItems(raw json.RawMessage) ([]*core.LabelRequest, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}

	items := make([]*core.LabelRequest, len(elems))
	for i, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			continue
		}
		var item core.LabelRequest
		if err := json.Unmarshal(elem, &item); err != nil {
			continue
		}
		items[i] = &item
	}
	return items, true
}
