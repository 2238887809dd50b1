package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name      string
		width     float64
		height    float64
		platforms []Rect
		wantErr   bool
	}{
		{
			name:      "ground and ledge",
			width:     1000,
			height:    600,
			platforms: []Rect{{X: 0, Y: 450, W: 1000, H: 150}, {X: 150, Y: 340, W: 180, H: 16}},
		},
		{
			name:      "stacked touching platforms",
			width:     1000,
			height:    600,
			platforms: []Rect{{X: 0, Y: 450, W: 100, H: 10}, {X: 0, Y: 460, W: 100, H: 10}},
		},
		{name: "no platforms", width: 100, height: 100},
		{name: "zero width", width: 0, height: 600, wantErr: true},
		{name: "negative height", width: 1000, height: -1, wantErr: true},
		{
			name:      "degenerate platform",
			width:     1000,
			height:    600,
			platforms: []Rect{{X: 0, Y: 450, W: 0, H: 150}},
			wantErr:   true,
		},
		{
			name:      "overlapping platforms",
			width:     1000,
			height:    600,
			platforms: []Rect{{X: 0, Y: 450, W: 1000, H: 150}, {X: 100, Y: 440, W: 50, H: 20}},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewArena(tt.width, tt.height, tt.platforms)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidGeometry))
				return
			}
			require.NoError(t, err)
			assert.Len(t, a.Platforms, len(tt.platforms))
			for i, p := range a.Platforms {
				assert.Equal(t, tt.platforms[i], p.Rect, "platform order is preserved")
			}
		})
	}
}
