package http

import (
	"github.com/gin-gonic/gin"

	"task-nlp/pkg/response"
)

// Extract godoc
// @Summary     Extract task due date
// @Description Resolves the due date of a pt-BR task utterance. The text is returned verbatim as the title.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Utterance and optional reference instant"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Extract(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// ExtractBulk godoc
// @Summary     Extract many tasks
// @Description Resolves one task per non-blank line, all against the same reference instant.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Lines of utterances and optional reference instant"
// @Success     200  {object} extractBulkResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/extract/bulk [POST]
func (h *handler) ExtractBulk(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	input, err := req.toBulkInput()
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.ExtractBulk(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractBulk: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExtractBulkResp(output))
}
