package config

// SceneConfig is the root config for scene files (scene.yaml / .toml / .json)
type SceneConfig struct {
	Display   DisplayConfig   `json:"display" yaml:"display" toml:"display"`
	Stars     StarsConfig     `json:"stars" yaml:"stars" toml:"stars"`
	Cinematic CinematicConfig `json:"cinematic" yaml:"cinematic" toml:"cinematic"`
	Render    RenderConfig    `json:"render" yaml:"render" toml:"render"`
	UI        UIConfig        `json:"ui" yaml:"ui" toml:"ui"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth" yaml:"screenWidth" toml:"screenWidth"`
	ScreenHeight int    `json:"screenHeight" yaml:"screenHeight" toml:"screenHeight"`
	Scale        int    `json:"scale" yaml:"scale" toml:"scale"`
	Framerate    int    `json:"framerate" yaml:"framerate" toml:"framerate"`
	Title        string `json:"title" yaml:"title" toml:"title"`
}

// StarsConfig configures star generation and the per-frame animation
type StarsConfig struct {
	Count       int     `json:"count" yaml:"count" toml:"count"`
	Radius      float64 `json:"radius" yaml:"radius" toml:"radius"`
	SizeMin     float64 `json:"sizeMin" yaml:"sizeMin" toml:"sizeMin"`
	SizeMax     float64 `json:"sizeMax" yaml:"sizeMax" toml:"sizeMax"`
	VelocityMin float64 `json:"velocityMin" yaml:"velocityMin" toml:"velocityMin"` // per axis, per frame
	VelocityMax float64 `json:"velocityMax" yaml:"velocityMax" toml:"velocityMax"`
	FlickerAmt  float64 `json:"flickerAmt" yaml:"flickerAmt" toml:"flickerAmt"`
	FlickerFreq float64 `json:"flickerFreq" yaml:"flickerFreq" toml:"flickerFreq"` // radians per millisecond
}

// CinematicConfig holds the fly-to-star timings. Times are seconds,
// angles degrees. Ease names use the "power1.in" style.
type CinematicConfig struct {
	MinGoDist       float64 `json:"minGoDist" yaml:"minGoDist" toml:"minGoDist"`
	GoFrontAngleDeg float64 `json:"goFrontAngleDeg" yaml:"goFrontAngleDeg" toml:"goFrontAngleDeg"`

	FOVOriginal float64 `json:"fovOriginal" yaml:"fovOriginal" toml:"fovOriginal"`
	FOVTarget   float64 `json:"fovTarget" yaml:"fovTarget" toml:"fovTarget"`
	FOVTime     float64 `json:"fovTime" yaml:"fovTime" toml:"fovTime"`

	CamMoveTime   float64 `json:"camMoveTime" yaml:"camMoveTime" toml:"camMoveTime"`
	CamRotateTime float64 `json:"camRotateTime" yaml:"camRotateTime" toml:"camRotateTime"`
	CamRotateEase string  `json:"camRotateEase" yaml:"camRotateEase" toml:"camRotateEase"`
	DefaultEase   string  `json:"defaultEase" yaml:"defaultEase" toml:"defaultEase"`

	BloomInit    float64 `json:"bloomInit" yaml:"bloomInit" toml:"bloomInit"`
	BloomTarget  float64 `json:"bloomTarget" yaml:"bloomTarget" toml:"bloomTarget"`
	BloomTime    float64 `json:"bloomTime" yaml:"bloomTime" toml:"bloomTime"`
	EnlargeScale float64 `json:"enlargeScale" yaml:"enlargeScale" toml:"enlargeScale"`

	FadeToBlackTime float64 `json:"fadeToBlackTime" yaml:"fadeToBlackTime" toml:"fadeToBlackTime"`
	FadeEase        string  `json:"fadeEase" yaml:"fadeEase" toml:"fadeEase"`

	MoveSpawnAt      float64 `json:"moveSpawnAt" yaml:"moveSpawnAt" toml:"moveSpawnAt"`
	RevertSpawnAt    float64 `json:"revertSpawnAt" yaml:"revertSpawnAt" toml:"revertSpawnAt"`
	ApproachDistance float64 `json:"approachDistance" yaml:"approachDistance" toml:"approachDistance"`
}

// RenderConfig configures the renderer backends
type RenderConfig struct {
	Style     string  `json:"style" yaml:"style" toml:"style"` // "points" or "spheres"
	PointSize float64 `json:"pointSize" yaml:"pointSize" toml:"pointSize"`
	Near      float64 `json:"near" yaml:"near" toml:"near"`
	Far       float64 `json:"far" yaml:"far" toml:"far"`
	HUD       bool    `json:"hud" yaml:"hud" toml:"hud"`
}

// UIConfig places the on-screen buttons (logical pixels)
type UIConfig struct {
	GoButton     Rect `json:"goButton" yaml:"goButton" toml:"goButton"`
	ReturnButton Rect `json:"returnButton" yaml:"returnButton" toml:"returnButton"`
}

type Rect struct {
	X int `json:"x" yaml:"x" toml:"x"`
	Y int `json:"y" yaml:"y" toml:"y"`
	W int `json:"w" yaml:"w" toml:"w"`
	H int `json:"h" yaml:"h" toml:"h"`
}

// Contains reports whether the point (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Render styles
const (
	StylePoints  = "points"
	StyleSpheres = "spheres"
)
