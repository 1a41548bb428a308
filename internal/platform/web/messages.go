package web

import (
	"github.com/vovakirdan/tui-catch/internal/games/catch"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

// Client message types
const (
	MsgLayout = "layout" // Width, Height: play area in CSS pixels
	MsgBasket = "basket" // X: raw pointer position
	MsgFocus  = "focus"  // Foreground: page visibility
	MsgStart  = "start"
	MsgScores = "scores" // Ask for the leaderboard
)

// Server message types
const (
	MsgState = "state"
	MsgError = "error"
)

// ClientMessage is sent by the browser.
type ClientMessage struct {
	Type       string  `json:"type"`
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	X          float64 `json:"x,omitempty"`
	Foreground *bool   `json:"foreground,omitempty"`
}

// ServerMessage is pushed to the browser.
type ServerMessage struct {
	Type   string                `json:"type"`
	State  *catch.Snapshot       `json:"state,omitempty"`
	Scores []storage.RoundResult `json:"scores,omitempty"`
	Error  string                `json:"error,omitempty"`
}
