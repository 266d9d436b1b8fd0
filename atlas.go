package sprig

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas holds one or more page textures and a map of named frames.
type Atlas struct {
	// Pages contains the page textures indexed by page number. A page loaded
	// without an image stays pending; its frames are skipped until SetPage
	// supplies the pixels.
	Pages    []*BaseTexture
	textures map[string]*Texture
}

// Texture returns the frame with the given name.
// If the name doesn't exist, it logs a warning and returns a 1x1 magenta
// placeholder texture.
func (a *Atlas) Texture(name string) *Texture {
	if t, ok := a.textures[name]; ok {
		return t
	}
	Logger().Warn("sprig: atlas frame not found, using magenta placeholder", "name", name)
	return ensureMagentaTexture()
}

// Has reports whether the atlas contains a frame with the given name.
func (a *Atlas) Has(name string) bool {
	_, ok := a.textures[name]
	return ok
}

// Names returns every frame name in sorted order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.textures))
	for name := range a.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetPage supplies or replaces the image of page index. Frames already
// handed out keep working and pick up the new pixels on their next draw.
func (a *Atlas) SetPage(index int, img *ebiten.Image) error {
	if index < 0 || index >= len(a.Pages) {
		return fmt.Errorf("sprig: atlas page %d out of range (%d pages)", index, len(a.Pages))
	}
	if img == nil {
		return errors.New("sprig: atlas page image is nil")
	}
	a.Pages[index].SetImage(img)
	return nil
}

// magenta placeholder singleton (sprig is single-threaded)
var magentaTexture *Texture

func ensureMagentaTexture() *Texture {
	if magentaTexture == nil {
		img := ebiten.NewImage(1, 1)
		img.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
		magentaTexture = NewTexture(NewBaseTexture(img))
	}
	return magentaTexture
}

// LoadAtlas parses TexturePacker JSON and wraps each page image in a
// BaseTexture. A nil page is loaded pending; fill it later with SetPage.
// Both the hash format (one "frames" object) and the array format (a
// "textures" list with per-page frames) are accepted.
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var top struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &top); err != nil {
		return nil, fmt.Errorf("sprig: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Pages:    make([]*BaseTexture, len(pages)),
		textures: make(map[string]*Texture),
	}
	for i, img := range pages {
		if img == nil {
			atlas.Pages[i] = NewPendingBaseTexture(0, 0)
			continue
		}
		atlas.Pages[i] = NewBaseTexture(img)
	}

	var err error
	switch {
	case top.Textures != nil:
		err = parseArrayFormat(top.Textures, atlas)
	case top.Frames != nil:
		err = parseHashFrames(top.Frames, 0, atlas)
	default:
		err = errors.New("sprig: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	if err != nil {
		return nil, err
	}
	return atlas, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// parseHashFrames parses the hash format: {"name": {frame...}, ...}
func parseHashFrames(raw json.RawMessage, page int, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("sprig: failed to parse atlas frames: %w", err)
	}
	for name, f := range frames {
		t, err := atlas.frameTexture(f, page)
		if err != nil {
			return fmt.Errorf("sprig: atlas frame %q: %w", name, err)
		}
		atlas.textures[name] = t
	}
	return nil
}

// parseArrayFormat parses the array format: [{"image":"...", "frames":{...}}, ...]
func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("sprig: failed to parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		for name, f := range tex.Frames {
			t, err := atlas.frameTexture(f, i)
			if err != nil {
				return fmt.Errorf("sprig: atlas frame %q: %w", name, err)
			}
			atlas.textures[name] = t
		}
	}
	return nil
}

// frameTexture builds the Texture for one frame. The JSON frame rect is in
// page orientation, so a rotated frame swaps its sides for display.
func (a *Atlas) frameTexture(f jsonFrame, page int) (*Texture, error) {
	if page < 0 || page >= len(a.Pages) {
		return nil, fmt.Errorf("page %d not provided (%d pages)", page, len(a.Pages))
	}
	w, h := f.Frame.W, f.Frame.H
	if f.Rotated {
		w, h = h, w
	}
	t := NewTextureFrame(a.Pages[page], Rect{
		X:      float64(f.Frame.X),
		Y:      float64(f.Frame.Y),
		Width:  float64(w),
		Height: float64(h),
	})
	if f.Rotated {
		t.SetRotated(true)
	}
	if f.Trimmed {
		t.SetTrim(
			Vec2{float64(f.SourceSize.W), float64(f.SourceSize.H)},
			Vec2{float64(f.SpriteSourceSize.X), float64(f.SpriteSourceSize.Y)},
		)
	}
	return t, nil
}
