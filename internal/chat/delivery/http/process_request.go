package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds the chat request body. A missing body is an empty message.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

// processSetAlgoReq binds and validates the set_algo request body.
func (h *handler) processSetAlgoReq(c *gin.Context) (setAlgoReq, error) {
	var req setAlgoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}
