// Package dto defines the JSON messages exchanged on a chart session.
package dto

// Message types sent by the browser.
const (
	TypeResize = "resize"
	TypeEnter  = "enter"
	TypeLeave  = "leave"
)

// Message types sent by the server.
const (
	TypeScene = "scene"
	TypeError = "error"
)

// ClientMessage is one browser event: a container resize or a pointer
// entering or leaving a hit region.
type ClientMessage struct {
	Type   string  `json:"type"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Index  *int    `json:"index,omitempty"`
}

// SceneMessage carries the re-rendered chart after a state change.
type SceneMessage struct {
	Type  string `json:"type"`
	Hover string `json:"hover"`
	Index *int   `json:"index,omitempty"`
	SVG   string `json:"svg"`
}

// ErrorMessage reports a rejected client message. The session stays open.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
