package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // ArrowLeft
	R bool `json:"r,omitempty"` // ArrowRight
	U bool `json:"u,omitempty"` // ArrowUp
	D bool `json:"d,omitempty"` // ArrowDown
	S bool `json:"s,omitempty"` // Space
	E bool `json:"e,omitempty"` // Enter
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
