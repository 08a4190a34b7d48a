package http

import (
	"restaurant-bot/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Text string `json:"text"`
	Algo string `json:"algo"`
}

func (r chatReq) toInput(clientID string) chat.ChatInput {
	return chat.ChatInput{
		ClientID: clientID,
		Text:     r.Text,
		Algo:     r.Algo,
	}
}

type setAlgoReq struct {
	Algo string `json:"algo" binding:"required"`
}

func (r setAlgoReq) toInput(clientID string) chat.SetAlgoInput {
	return chat.SetAlgoInput{
		ClientID: clientID,
		Algo:     r.Algo,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Reply      string  `json:"reply"`
	Algo       string  `json:"algo,omitempty"`
}

func (h *handler) newChatResp(o chat.ChatOutput) chatResp {
	return chatResp{
		Intent:     o.Intent,
		Confidence: o.Confidence,
		Reply:      o.Reply,
		Algo:       o.Algo,
	}
}

type setAlgoResp struct {
	Algo string `json:"algo"`
}

type algorithmsResp struct {
	Available []string `json:"available"`
	Default   string   `json:"default"`
}

func (h *handler) newAlgorithmsResp(o chat.AlgorithmsOutput) algorithmsResp {
	available := o.Available
	if available == nil {
		available = []string{}
	}
	return algorithmsResp{Available: available, Default: o.Default}
}
