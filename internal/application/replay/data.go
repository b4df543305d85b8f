package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	G  bool `json:"g,omitempty"`  // Go key
	R  bool `json:"r,omitempty"`  // Return key
	MX int  `json:"mx"`           // MouseX
	MY int  `json:"my"`           // MouseY
	MC bool `json:"mc,omitempty"` // MouseClick
}

// ReplayData contains all data needed to replay a session. Only input
// is stored; the scene is rebuilt from Seed and Scene.
type ReplayData struct {
	Version     string       `json:"version"`
	Seed        int64        `json:"seed"`
	Scene       string       `json:"scene"`
	StartTime   string       `json:"startTime"`
	StartMillis int64        `json:"startMillis"` // flicker clock at frame 0
	Frames      []FrameInput `json:"frames"`
}
