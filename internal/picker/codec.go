// internal/picker/codec.go
package picker

import (
	"errors"
	"fmt"
	"image/color"

	"go-hex-tactics/internal/core"
	"go-hex-tactics/pkg/hexmap"
)

// Kind is stored in the blue channel of a picking pixel.
type Kind uint8

const (
	KindNothing Kind = 0
	KindTile    Kind = 1
	KindUnit    Kind = 2
)

func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindTile:
		return "tile"
	case KindUnit:
		return "unit"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// maxByte is the largest coordinate or unit id that fits a color channel.
const maxByte = 255

var (
	ErrOutOfRange  = errors.New("value does not fit a color channel")
	ErrUnknownKind = errors.New("unknown pick kind")
)

// Background is the clear color of the picking target.
var Background = color.RGBA{A: 0xff}

// Result is what a picking pixel decodes to.
type Result struct {
	Kind Kind
	Pos  hexmap.MapPos
	Unit core.UnitID
}

// Nothing is the result for background pixels.
var Nothing = Result{Kind: KindNothing}

func TileResult(pos hexmap.MapPos) Result { return Result{Kind: KindTile, Pos: pos} }
func UnitResult(id core.UnitID) Result    { return Result{Kind: KindUnit, Unit: id} }

func (r Result) String() string {
	switch r.Kind {
	case KindTile:
		return fmt.Sprintf("tile %v", r.Pos)
	case KindUnit:
		return fmt.Sprintf("unit #%d", r.Unit)
	}
	return r.Kind.String()
}

func fitsByte(v int) bool {
	return v >= 0 && v <= maxByte
}

// EncodeTile returns the flat color of a tile: R=x, G=y, B=1.
func EncodeTile(pos hexmap.MapPos) (color.RGBA, error) {
	if !fitsByte(pos.X) || !fitsByte(pos.Y) {
		return color.RGBA{}, fmt.Errorf("encode tile %v: %w", pos, ErrOutOfRange)
	}
	return color.RGBA{R: uint8(pos.X), G: uint8(pos.Y), B: uint8(KindTile), A: 0xff}, nil
}

// EncodeUnit returns the flat color of a unit: R=id, G=0, B=2.
func EncodeUnit(id core.UnitID) (color.RGBA, error) {
	if !fitsByte(int(id)) {
		return color.RGBA{}, fmt.Errorf("encode unit %d: %w", id, ErrOutOfRange)
	}
	return color.RGBA{R: uint8(id), B: uint8(KindUnit), A: 0xff}, nil
}

// Decode turns a pixel read back from the picking target into a Result.
// Alpha is ignored.
func Decode(c color.RGBA) (Result, error) {
	switch Kind(c.B) {
	case KindNothing:
		return Nothing, nil
	case KindTile:
		return TileResult(hexmap.MapPos{X: int(c.R), Y: int(c.G)}), nil
	case KindUnit:
		return UnitResult(core.UnitID(c.R)), nil
	}
	return Nothing, fmt.Errorf("decode %v: %w: %d", c, ErrUnknownKind, c.B)
}
