package http

import (
	"github.com/gin-gonic/gin"

	"restaurant-bot/internal/middleware"
	"restaurant-bot/pkg/response"
)

// Chat godoc
// @Summary     Send a message
// @Description Routes a message to an intent and returns the bot reply. The optional algo overrides the classifier for this call only.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-Client-ID header string  false "Conversation key; defaults to the caller address"
// @Param       body        body   chatReq true  "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request - unknown algorithm"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput(middleware.ClientID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// SetAlgo godoc
// @Summary     Set preferred classifier
// @Description Stores the classifier used for this client's later messages.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-Client-ID header string     false "Conversation key; defaults to the caller address"
// @Param       body        body   setAlgoReq true  "Classifier id"
// @Success     200 {object} setAlgoResp
// @Failure     400 {object} response.Resp "Bad Request - unknown algorithm"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/set_algo [POST]
func (h *handler) SetAlgo(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetAlgoReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetAlgo(ctx, req.toInput(middleware.ClientID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.SetAlgo: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, setAlgoResp{Algo: output.Algo})
}

// Algorithms godoc
// @Summary     List classifiers
// @Description Returns the loaded classifier ids and the process default.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} algorithmsResp
// @Router      /api/v1/algorithms [GET]
func (h *handler) Algorithms(c *gin.Context) {
	response.OK(c, h.newAlgorithmsResp(h.uc.Algorithms(c.Request.Context())))
}

// Reset godoc
// @Summary     Reset conversation
// @Description Forgets any pending reservation, price follow-up and classifier preference for the client.
// @Tags        Chat
// @Produce     json
// @Param       X-Client-ID header string false "Conversation key; defaults to the caller address"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Reset(ctx, middleware.ClientID(c)); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
