package config

// SheetConfig is the root of a sprite sheet document (TexturePacker JSON hash format)
type SheetConfig struct {
	Frames map[string]CellConfig `json:"frames"`
}

// CellConfig describes one named frame
type CellConfig struct {
	Frame            RectConfig `json:"frame"`            // Source area in the sheet image
	SpriteSourceSize RectConfig `json:"spriteSourceSize"` // Offset of the trimmed frame inside the original sprite
}

type RectConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}
