package svg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCommandsInDelta(t *testing.T, want, got []Command) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Equal(t, want[i].Type, got[i].Type, "command %d", i)
		require.Len(t, got[i].Params, len(want[i].Params), "command %d", i)
		for j := range want[i].Params {
			assert.InDelta(t, want[i].Params[j], got[i].Params[j], 1e-9, "command %d param %d", i, j)
		}
	}
}

func sample() *Builder {
	return NewBuilder(
		Cmd(MoveTo, 1, 2),
		Cmd(LineTo, 3, 5),
		Cmd(CubicCurveTo, 4, 4, 6, 6, 8, 2),
		Cmd(QuadraticCurveTo, 9, 9, 10, 0),
		Cmd(ArcTo, 2, 3, 0, 0, 1, 12, 4),
		Cmd(ClosePath),
	)
}

func TestTranslateRoundTrip(t *testing.T) {
	b := sample()
	orig := b.Commands()

	b.Translate(7, -3)
	moved := b.Commands()
	assert.Equal(t, Cmd(MoveTo, 8, -1), moved[0])
	assert.Equal(t, Cmd(CubicCurveTo, 11, 1, 13, 3, 15, -1), moved[2])
	// radii and flags are not coordinates
	assert.Equal(t, Cmd(ArcTo, 2, 3, 0, 0, 1, 19, 1), moved[4])
	assert.Equal(t, Cmd(ClosePath), moved[5])

	b.Translate(-7, 3)
	assert.Equal(t, orig, b.Commands())
}

func TestTranslateTo(t *testing.T) {
	b := sample()
	require.NoError(t, b.TranslateTo(0, 0))
	start, _, err := b.StartPoint()
	require.NoError(t, err)
	assert.Equal(t, Point{0, 0}, start)
	assert.Equal(t, Cmd(LineTo, 2, 3), b.Commands()[1])

	assert.ErrorIs(t, NewBuilder().TranslateTo(1, 1), ErrEmptyPath)
}

func TestScale(t *testing.T) {
	b := sample()
	b.Scale(2, 3)
	got := b.Commands()
	assert.Equal(t, Cmd(MoveTo, 2, 6), got[0])
	assert.Equal(t, Cmd(QuadraticCurveTo, 18, 27, 20, 0), got[3])
	assert.Equal(t, Cmd(ArcTo, 4, 9, 0, 0, 1, 24, 12), got[4])

	u := sample()
	u.ScaleUniform(0.5)
	assert.Equal(t, Cmd(LineTo, 1.5, 2.5), u.Commands()[1])
}

func TestMirrorScaleFlipsSweep(t *testing.T) {
	b := NewBuilder(Cmd(MoveTo, 0, 0), Cmd(ArcTo, 2, 2, 0, 0, 1, 4, 0))
	b.Scale(-1, 1)
	assert.Equal(t, Cmd(ArcTo, 2, 2, 0, 0, 0, -4, 0), b.Commands()[1])
}

func TestRotateAbsoluteHalfTurn(t *testing.T) {
	b := sample()
	b.RotateAbsolute(math.Pi, 1, 1)

	assertCommandsInDelta(t, []Command{
		Cmd(MoveTo, 1, 0),
		Cmd(LineTo, -1, -3),
		Cmd(CubicCurveTo, -2, -2, -4, -4, -6, 0),
		Cmd(QuadraticCurveTo, -7, -7, -8, 2),
		Cmd(ArcTo, 2, 3, 180, 0, 1, -10, -2),
		Cmd(ClosePath),
	}, b.Commands())
}

func TestRotateFullTurnIsIdentity(t *testing.T) {
	b := sample()
	b.RotateAbsolute(2*math.Pi, 5, 5)
	want := sample().Commands()
	want[4].Params[2] = 360
	assertCommandsInDelta(t, want, b.Commands())
}

func TestRotateAbsoluteQuarterTurn(t *testing.T) {
	b := NewBuilder(Cmd(MoveTo, 1, 0), Cmd(ArcTo, 1, 2, 10, 0, 1, 3, 0))
	b.RotateAbsolute(math.Pi/2, 0, 0)
	assertCommandsInDelta(t, []Command{
		Cmd(MoveTo, 0, 1),
		Cmd(ArcTo, 1, 2, 100, 0, 1, 0, 3),
	}, b.Commands())
}

func TestRotateAbsoluteZeroAngleOffCenter(t *testing.T) {
	b := NewBuilder(Cmd(MoveTo, 3, 1), Cmd(LineTo, -4, 7))
	b.RotateAbsolute(0, 2, 5)
	assertCommandsInDelta(t, []Command{
		Cmd(MoveTo, 3, 1),
		Cmd(LineTo, -4, 7),
	}, b.Commands())
}

func TestRotateAroundStartPoint(t *testing.T) {
	b := NewBuilder(Cmd(MoveTo, 2, 2), Cmd(LineTo, 4, 2))
	require.NoError(t, b.Rotate(math.Pi, 0, 0))
	assertCommandsInDelta(t, []Command{
		Cmd(MoveTo, 2, 2),
		Cmd(LineTo, 0, 2),
	}, b.Commands())

	o := NewBuilder(Cmd(MoveTo, 2, 2), Cmd(LineTo, 4, 2))
	require.NoError(t, o.Rotate(math.Pi, 1, 0))
	assertCommandsInDelta(t, []Command{
		Cmd(MoveTo, 4, 2),
		Cmd(LineTo, 2, 2),
	}, o.Commands())

	assert.ErrorIs(t, NewBuilder().Rotate(1, 0, 0), ErrEmptyPath)
}

func TestTransformResolvesShorthand(t *testing.T) {
	b := NewBuilder(Cmd(MoveTo, 1, 1), Cmd(HorizontalLineTo, 5), Cmd(VerticalLineTo, 4), Cmd(ClosePath))
	b.Translate(1, 1)
	assert.Equal(t, []Command{
		Cmd(MoveTo, 2, 2),
		Cmd(LineTo, 6, 2),
		Cmd(LineTo, 6, 5),
		Cmd(ClosePath),
	}, b.Commands())
}
