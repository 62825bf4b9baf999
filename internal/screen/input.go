package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/yulog/ebiten-sandbox/ball-blaster/internal/blaster"
)

// readInput maps this tick's mouse, touch and keyboard state to core input.
// Touch wins over the mouse when both are present.
func readInput() blaster.Input {
	var in blaster.Input

	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, _ := ebiten.TouchPosition(ids[0])
		in.PointerX, in.HasPointer = float64(x), true
	} else {
		x, _ := ebiten.CursorPosition()
		in.PointerX, in.HasPointer = float64(x), true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Trigger = blaster.Click(float64(x), float64(y))
	} else if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		in.Trigger = blaster.Click(float64(x), float64(y))
	} else if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		in.Trigger = blaster.Key()
	}

	in.Fire = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	return in
}
