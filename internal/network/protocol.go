package network

import "encoding/json"

// Message types - Client → Server
const (
	MsgTypeSetTool      = "set_tool"
	MsgTypeToggleLabels = "toggle_labels"
	MsgTypePointer      = "pointer"
	MsgTypeButtons      = "buttons"
	MsgTypeWheel        = "wheel"
	MsgTypePan          = "pan"
	MsgTypeViewport     = "viewport"
	MsgTypePing         = "ping"
)

// Message types - Server → Client
const (
	MsgTypeWelcome     = "welcome"
	MsgTypeFrame       = "frame"
	MsgTypeTilePainted = "tile_painted"
	MsgTypeError       = "error"
	MsgTypePong        = "pong"
)

// Error codes sent in ErrorPayload
const (
	ErrCodeBadMessage  = "bad_message"
	ErrCodeUnknownType = "unknown_type"
	ErrCodeRateLimited = "rate_limited"
	ErrCodeSessionFull = "session_full"
	ErrCodeForbidden   = "forbidden"
)

// ClientMessage represents any message from client to server
type ClientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ServerMessage represents any message from server to client
type ServerMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// --- Client Message Payloads ---

// SetToolPayload selects the painting tool by name or label
type SetToolPayload struct {
	Name string `json:"name"`
}

// PointerPayload is the pointer position in viewport pixels. Inside is false
// when the pointer left the window.
type PointerPayload struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Inside bool    `json:"inside"`
}

// ButtonsPayload carries the held state of the painting button
type ButtonsPayload struct {
	Primary bool `json:"primary"`
}

// WheelPayload is one mouse wheel event
type WheelPayload struct {
	Delta float64 `json:"delta"`
}

// PanPayload lists the held pan keys
type PanPayload struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Up    bool `json:"up"`
	Down  bool `json:"down"`
}

// ViewportPayload is the host window size in pixels
type ViewportPayload struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// --- Server Message Payloads ---

// WelcomePayload is sent to client after successful connection
type WelcomePayload struct {
	HostID    string       `json:"host_id"`
	Username  string       `json:"username"`
	SessionID string       `json:"session_id"`
	TickRate  int          `json:"tick_rate"`
	Tools     []ToolInfo   `json:"tools"`
	Status    EditorStatus `json:"status"`
}

// ToolInfo describes one selectable tool
type ToolInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Asset string `json:"asset"` // artwork path relative to the asset root
}

// FramePayload summarizes one simulation tick
type FramePayload struct {
	Tick        uint64  `json:"tick"`
	State       string  `json:"state"`
	Hovered     *uint64 `json:"hovered,omitempty"`
	Tool        string  `json:"tool"`
	Labels      bool    `json:"labels"`
	Zoom        float64 `json:"zoom"`
	TranslateX  float64 `json:"translate_x"`
	TranslateY  float64 `json:"translate_y"`
	ToolChanged bool    `json:"tool_changed,omitempty"`
}

// TilePaintedPayload is broadcast whenever a cell is painted
type TilePaintedPayload struct {
	Index   uint64 `json:"index"`
	Q       int    `json:"q"`
	R       int    `json:"r"`
	S       int    `json:"s"`
	Tag     string `json:"tag"`
	Created bool   `json:"created"`
}

// EditorStatus represents the current editor state
type EditorStatus struct {
	Tick      uint64         `json:"tick"`
	Tiles     int            `json:"tiles"`
	Terrain   map[string]int `json:"terrain"` // tile count per tag
	Tool      string         `json:"tool"`
	Labels    bool           `json:"labels"`
	Zoom      float64        `json:"zoom"`
	HostCount int            `json:"host_count"`
	MaxHosts  int            `json:"max_hosts"`
	Uptime    int64          `json:"uptime"`
}

// ErrorPayload contains error information
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
