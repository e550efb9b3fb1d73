package colors

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/screen-measure-mcp/internal/profile"
)

func layered(v bool) LayeredCapability {
	return func() bool { return v }
}

func TestRoles(t *testing.T) {
	roles := Roles()
	require.Len(t, roles, NumRoles)

	wantKeys := []string{
		"LineFore", "CrossHairBack", "CrossHairBorder", "CrossHairHilite",
		"CrossHairOpacity", "RulerBack", "RulerBorder", "RulerOpacity",
	}
	for i, r := range roles {
		assert.Equal(t, Role(i), r)
		assert.Equal(t, wantKeys[i], r.Key())
		assert.True(t, r.Valid())
	}

	assert.Equal(t, "CrossHairHighlight", CrossHairHighlight.String())
	assert.Equal(t, "Role(42)", Role(42).String())
	assert.False(t, Role(-1).Valid())
	assert.Empty(t, Role(NumRoles).Key())
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("RulerBorder")
	require.NoError(t, err)
	assert.Equal(t, RulerBorder, r)

	r, err = ParseRole("crosshairhilite")
	require.NoError(t, err)
	assert.Equal(t, CrossHairHighlight, r)

	_, err = ParseRole("Background")
	assert.True(t, errors.Is(err, ErrUnknownRole))
}

func TestIsOpacity(t *testing.T) {
	for _, r := range Roles() {
		assert.Equal(t, r == CrossHairOpacity || r == RulerOpacity, r.IsOpacity(), r.String())
	}
}

func TestDefaultTable(t *testing.T) {
	def := DefaultTable(true)
	assert.Equal(t, RGB{0xFF, 0, 0}, def[LineForeground])
	assert.Equal(t, RGB{0xFF, 0, 0}, def[CrossHairBackground])
	assert.Equal(t, RGB{0x50, 0x50, 0x50}, def[CrossHairBorder])
	assert.Equal(t, RGB{0xFF, 0xFF, 0}, def[CrossHairHighlight])
	assert.Equal(t, RGB{0xE5, 0, 0}, def[CrossHairOpacity])
	assert.Equal(t, RGB{0xFF, 0xFF, 0xFF}, def[RulerBackground])
	assert.Equal(t, RGB{0, 0, 0}, def[RulerBorder])
	assert.Equal(t, RGB{0xE5, 0, 0}, def[RulerOpacity])

	opaque := DefaultTable(false)
	assert.Equal(t, RGB{0xFF, 0, 0}, opaque[CrossHairOpacity])
	assert.Equal(t, RGB{0xFF, 0, 0}, opaque[RulerOpacity])
	assert.Equal(t, def[RulerBackground], opaque[RulerBackground])
}

func TestNewPalette_QueriesCapabilityOnce(t *testing.T) {
	calls := 0
	p := NewPalette(func() bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)

	p.Reset()
	p.Load(profile.NewMemory(false))
	_ = p.Get(RulerOpacity)
	assert.Equal(t, 1, calls)
	assert.Equal(t, RGB{0xFF, 0, 0}, p.Get(RulerOpacity))

	assert.Equal(t, DefaultTable(true), NewPalette(nil).Snapshot())
}

func TestPalette_SetGetReset(t *testing.T) {
	p := NewPalette(layered(true))
	assert.Equal(t, DefaultTable(true), p.Snapshot())

	p.Set(RulerBorder, RGB{1, 2, 3})
	assert.Equal(t, RGB{1, 2, 3}, p.Get(RulerBorder))
	assert.Equal(t, RGB{0, 0, 0}, p.Default(RulerBorder))

	p.Reset()
	assert.Equal(t, p.Defaults(), p.Snapshot())
	for _, r := range Roles() {
		assert.Equal(t, p.Default(r), p.Get(r))
	}
}

func TestPalette_Opacity(t *testing.T) {
	p := NewPalette(layered(true))

	o, err := p.Opacity(CrossHairOpacity)
	require.NoError(t, err)
	assert.Equal(t, LayeredOpacity, o)
	assert.Equal(t, 89, OpacityPercent(o))

	require.NoError(t, p.SetOpacity(RulerOpacity, 0x80))
	assert.Equal(t, RGB{0x80, 0, 0}, p.Get(RulerOpacity))

	_, err = p.Opacity(RulerBorder)
	assert.Error(t, err)
	assert.Error(t, p.SetOpacity(LineForeground, 1))
	assert.Equal(t, 100, OpacityPercent(0xFF))
}

func TestPalette_SaveLoad(t *testing.T) {
	store := profile.NewMemory(false)

	p := NewPalette(layered(true))
	p.Set(LineForeground, RGB{0x12, 0x34, 0x56})
	require.True(t, p.Save(store))
	_, writes := store.Calls()
	assert.Equal(t, NumRoles, writes)
	assert.Equal(t, 0x563412, store.Values()["LineFore"])
	assert.Equal(t, 0xE5, store.Values()["RulerOpacity"])

	q := NewPalette(layered(true))
	require.True(t, q.Load(store))
	reads, _ := store.Calls()
	assert.Equal(t, NumRoles, reads)
	assert.Equal(t, p.Snapshot(), q.Snapshot())
}

func TestPalette_LoadFallsBackToDefaults(t *testing.T) {
	store := profile.NewMemory(false)
	store.WriteInt("RulerBack", RGB{9, 9, 9}.Packed())

	p := NewPalette(layered(false))
	p.Set(LineForeground, RGB{1, 1, 1})
	require.True(t, p.Load(store))

	assert.Equal(t, RGB{9, 9, 9}, p.Get(RulerBackground))
	// absent keys come back as defaults, not as the previous active value
	assert.Equal(t, RGB{0xFF, 0, 0}, p.Get(LineForeground))
	assert.Equal(t, RGB{0xFF, 0, 0}, p.Get(CrossHairOpacity))
}

func TestPalette_UserInitiatedGuard(t *testing.T) {
	store := profile.NewMemory(true)
	p := NewPalette(layered(true))
	p.Set(RulerBorder, RGB{4, 5, 6})

	assert.False(t, p.Save(store))
	assert.False(t, p.Load(store))
	reads, writes := store.Calls()
	assert.Zero(t, reads)
	assert.Zero(t, writes)
	assert.Equal(t, RGB{4, 5, 6}, p.Get(RulerBorder))

	// the guard is asked on every call
	assert.Equal(t, 2, store.GuardQueries())
	store.SetUserInitiated(false)
	assert.True(t, p.Save(store))
	assert.Equal(t, 3, store.GuardQueries())
	_, writes = store.Calls()
	assert.Equal(t, NumRoles, writes)
}

func TestPalette_ConcurrentAccess(t *testing.T) {
	p := NewPalette(layered(true))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				role := Role((i + j) % NumRoles)
				p.Set(role, RGB{uint8(i), uint8(j), 0})
				_ = p.Get(role)
				if j%25 == 0 {
					p.Reset()
				}
			}
		}(i)
	}
	wg.Wait()

	snap := p.Snapshot()
	assert.Len(t, snap, NumRoles)
}
