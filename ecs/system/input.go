package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

// Intent is what the player asked for since the last frame.
type Intent struct {
	Targets        []cp.Vector
	ToggleAutoplay bool
	TogglePause    bool
	Clear          bool
}

// InputSystem samples pointer, touch and keyboard state once per frame.
type InputSystem struct {
	touches []ebiten.TouchID
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Poll() Intent {
	var in Intent

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Targets = append(in.Targets, cp.Vector{X: float64(x), Y: float64(y)})
	}

	i.touches = inpututil.AppendJustPressedTouchIDs(i.touches[:0])
	for _, id := range i.touches {
		x, y := ebiten.TouchPosition(id)
		in.Targets = append(in.Targets, cp.Vector{X: float64(x), Y: float64(y)})
	}

	in.ToggleAutoplay = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.TogglePause = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.Clear = inpututil.IsKeyJustPressed(ebiten.KeyC)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		in.TogglePause = in.TogglePause || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		in.ToggleAutoplay = in.ToggleAutoplay || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	return in
}
