package court

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionsDocumentOrder(t *testing.T) {
	ps := Positions(Home, Left)
	require.Len(t, ps, PositionCount)

	want := []string{"front-left", "front-right", "mid-left", "mid-right", "back-left", "back-right"}
	for i, id := range want {
		assert.Equal(t, id, ps[i].ID)
	}
	assert.Equal(t, "Front Left", ps[0].Label)
	assert.Equal(t, "BR", ps[5].Short)
}

func TestPositionsDepth(t *testing.T) {
	for _, side := range []Side{Home, Away} {
		for _, home := range []Orientation{Left, Right} {
			ps := Positions(side, home)
			for _, p := range ps {
				assert.GreaterOrEqual(t, p.X, 0.0)
				assert.LessOrEqual(t, p.X, HalfLength)
				assert.GreaterOrEqual(t, p.Y, 0.0)
				assert.LessOrEqual(t, p.Y, Width)
			}
			// Front is closest to the net, back closest to the baseline
			assert.InDelta(t, HalfLength-ShortServiceFromNet, ps[0].X, 1e-9)
			assert.InDelta(t, LongServiceFromBaseline, ps[4].X, 1e-9)
			assert.Greater(t, ps[0].X, ps[2].X)
			assert.Greater(t, ps[2].X, ps[4].X)
		}
	}
}

func TestPositionsMirrorAcrossEnds(t *testing.T) {
	homeLeft := Positions(Home, Left)
	awayLeft := Positions(Away, Left)
	homeRight := Positions(Home, Right)

	for i := range homeLeft {
		// Opposite ends see the same trainee-left as opposite absolute sidelines
		assert.InDelta(t, Width, homeLeft[i].Y+awayLeft[i].Y, 1e-9, "position %s", homeLeft[i].ID)
		// Away from a left home equals home from a right home
		assert.InDelta(t, awayLeft[i].Y, homeRight[i].Y, 1e-9)
	}
}

func TestPositionsRegeneratedNotShared(t *testing.T) {
	a := Positions(Home, Left)
	a[0].X = 99
	b := Positions(Home, Left)
	assert.NotEqual(t, 99.0, b[0].X)
}

func TestActivePositions(t *testing.T) {
	all := Positions(Home, Left)

	tests := []struct {
		name  string
		zones ZoneActivation
		want  []string
	}{
		{"all", AllZones(), []string{"front-left", "front-right", "mid-left", "mid-right", "back-left", "back-right"}},
		{"front and back", ZoneActivation{Front: true, Back: true}, []string{"front-left", "front-right", "back-left", "back-right"}},
		{"mid only", ZoneActivation{Mid: true}, []string{"mid-left", "mid-right"}},
		{"none", ZoneActivation{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActivePositions(all, tt.zones)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if tt.want == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestZoneActivation(t *testing.T) {
	za := AllZones()
	assert.Equal(t, 3, za.Count())

	za.Toggle(Mid)
	assert.False(t, za.Active(Mid))
	assert.Equal(t, 2, za.Count())

	c := za.Clone()
	c.Toggle(Front)
	assert.True(t, za.Active(Front), "clone must not alias")
	assert.False(t, c.Active(Front))
}

func TestTrainedEnd(t *testing.T) {
	assert.Equal(t, Left, TrainedEnd(Home, Left))
	assert.Equal(t, Right, TrainedEnd(Away, Left))
	assert.Equal(t, Right, TrainedEnd(Home, Right))
	assert.Equal(t, Left, TrainedEnd(Away, Right))
}

func TestParse(t *testing.T) {
	s, err := ParseSide("away")
	require.NoError(t, err)
	assert.Equal(t, Away, s)

	_, err = ParseSide("north")
	assert.Error(t, err)

	o, err := ParseOrientation("right")
	require.NoError(t, err)
	assert.Equal(t, Right, o)

	_, err = ParseOrientation("up")
	assert.Error(t, err)
}

func TestIndexOf(t *testing.T) {
	ps := Positions(Home, Left)
	assert.Equal(t, 3, IndexOf(ps, "mid-right"))
	assert.Equal(t, -1, IndexOf(ps, "nowhere"))
}
