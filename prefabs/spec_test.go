package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadAllEmbedded(t *testing.T) {
	specs, err := LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 120.0, specs.Player.MoveSpeed)
	assert.Equal(t, uint32(30), specs.Player.HP)
	assert.Equal(t, uint32(1), specs.Player.Power)
	assert.Zero(t, specs.Player.Belly)
	assert.Equal(t, ColliderSpec{Width: 32, Height: 32}, specs.Player.Collider)

	for _, kind := range []string{"carrot", "apple", "blueberries", "clover"} {
		assert.Contains(t, specs.Food.Sprites, kind)
	}
	assert.Equal(t, "snake", specs.Enemy.Name)
	assert.Equal(t, "wall", specs.Wall.Name)
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{name: "named", in: "gold", want: color.RGBA{R: 0xff, G: 0xd7, A: 0xff}},
		{name: "named upper", in: "Gold", want: color.RGBA{R: 0xff, G: 0xd7, A: 0xff}},
		{name: "hex", in: `"#3cb371"`, want: color.RGBA{R: 0x3c, G: 0xb3, B: 0x71, A: 0xff}},
		{name: "hex alpha zero", in: `"#ffffff00"`, want: color.RGBA{}},
		{name: "bad length", in: `"#fff"`, wantErr: true},
		{name: "bad digits", in: `"#gg0000"`, wantErr: true},
		{name: "not scalar", in: "[1, 2]", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.RGBA)
		})
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir(Dir, 0o755))

	override := []byte("name: player\nmove_speed: 200\ncollider: {width: 20, height: 20}\n")
	require.NoError(t, os.WriteFile(filepath.Join(Dir, "player.yaml"), override, 0o644))

	spec, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Equal(t, 200.0, spec.MoveSpeed)

	_, ok := ModTime("prefabs/player.yaml")
	assert.True(t, ok)
	_, ok = ModTime("exit.yaml")
	assert.False(t, ok)

	// Files missing on disk still come from the embedded set.
	exit, err := LoadPropSpec("exit.yaml")
	require.NoError(t, err)
	assert.Equal(t, "exit", exit.Name)
}

func TestInvalidSpecs(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir(Dir, 0o755))

	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(Dir, name), []byte(body), 0o644))
	}

	write("player.yaml", "name: player\nmove_speed: 10\ncollider: {width: 0, height: 32}\n")
	_, err := LoadPlayerSpec()
	assert.ErrorIs(t, err, ErrInvalidSpec)

	write("exit.yaml", "name: [")
	_, err = LoadPropSpec("exit.yaml")
	assert.ErrorContains(t, err, "prefabs: unmarshal exit.yaml")

	_, err = LoadPropSpec("missing.yaml")
	assert.ErrorContains(t, err, "prefabs: load missing.yaml")
}
