package ebiten

import (
	"github.com/gogpu/tin"
	"github.com/hajimehoshi/ebiten/v2"
)

var keys = map[ebiten.Key]tin.Key{
	ebiten.KeyA: tin.KeyA, ebiten.KeyB: tin.KeyB, ebiten.KeyC: tin.KeyC,
	ebiten.KeyD: tin.KeyD, ebiten.KeyE: tin.KeyE, ebiten.KeyF: tin.KeyF,
	ebiten.KeyG: tin.KeyG, ebiten.KeyH: tin.KeyH, ebiten.KeyI: tin.KeyI,
	ebiten.KeyJ: tin.KeyJ, ebiten.KeyK: tin.KeyK, ebiten.KeyL: tin.KeyL,
	ebiten.KeyM: tin.KeyM, ebiten.KeyN: tin.KeyN, ebiten.KeyO: tin.KeyO,
	ebiten.KeyP: tin.KeyP, ebiten.KeyQ: tin.KeyQ, ebiten.KeyR: tin.KeyR,
	ebiten.KeyS: tin.KeyS, ebiten.KeyT: tin.KeyT, ebiten.KeyU: tin.KeyU,
	ebiten.KeyV: tin.KeyV, ebiten.KeyW: tin.KeyW, ebiten.KeyX: tin.KeyX,
	ebiten.KeyY: tin.KeyY, ebiten.KeyZ: tin.KeyZ,

	ebiten.KeyDigit0: tin.Key0, ebiten.KeyDigit1: tin.Key1,
	ebiten.KeyDigit2: tin.Key2, ebiten.KeyDigit3: tin.Key3,
	ebiten.KeyDigit4: tin.Key4, ebiten.KeyDigit5: tin.Key5,
	ebiten.KeyDigit6: tin.Key6, ebiten.KeyDigit7: tin.Key7,
	ebiten.KeyDigit8: tin.Key8, ebiten.KeyDigit9: tin.Key9,

	ebiten.KeySpace:      tin.KeySpace,
	ebiten.KeyEnter:      tin.KeyEnter,
	ebiten.KeyEscape:     tin.KeyEscape,
	ebiten.KeyTab:        tin.KeyTab,
	ebiten.KeyBackspace:  tin.KeyBackspace,
	ebiten.KeyDelete:     tin.KeyDelete,
	ebiten.KeyArrowLeft:  tin.KeyLeft,
	ebiten.KeyArrowRight: tin.KeyRight,
	ebiten.KeyArrowUp:    tin.KeyUp,
	ebiten.KeyArrowDown:  tin.KeyDown,
}

// Key maps an Ebitengine key to a tin key. Unmapped keys are
// tin.KeyUnknown.
func Key(k ebiten.Key) tin.Key {
	if tk, ok := keys[k]; ok {
		return tk
	}
	return tin.KeyUnknown
}
