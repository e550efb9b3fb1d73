package colors

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Role identifies a named color slot used by the overlays.
type Role int

// The closed set of color roles.
const (
	LineForeground Role = iota
	CrossHairBackground
	CrossHairBorder
	CrossHairHighlight
	CrossHairOpacity
	RulerBackground
	RulerBorder
	RulerOpacity

	// NumRoles is the number of roles.
	NumRoles int = iota
)

// ErrUnknownRole is returned by ParseRole for a name that is not a role.
var ErrUnknownRole = errors.New("unknown color role")

var roleNames = [NumRoles]string{
	"LineForeground",
	"CrossHairBackground",
	"CrossHairBorder",
	"CrossHairHighlight",
	"CrossHairOpacity",
	"RulerBackground",
	"RulerBorder",
	"RulerOpacity",
}

// roleKeys are the profile keys. They are part of the persisted format.
var roleKeys = [NumRoles]string{
	"LineFore",
	"CrossHairBack",
	"CrossHairBorder",
	"CrossHairHilite",
	"CrossHairOpacity",
	"RulerBack",
	"RulerBorder",
	"RulerOpacity",
}

// Roles returns every role in declaration order.
func Roles() []Role {
	roles := make([]Role, NumRoles)
	for i := range roles {
		roles[i] = Role(i)
	}
	return roles
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r >= 0 && int(r) < NumRoles
}

// String returns the role name, e.g. "RulerBorder".
func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// Key returns the profile key the role is persisted under, e.g.
// "CrossHairHilite".
func (r Role) Key() string {
	if !r.Valid() {
		return ""
	}
	return roleKeys[r]
}

// IsOpacity reports whether the role stores an opacity rather than a color.
// Opacity roles keep the opacity in the red channel.
func (r Role) IsOpacity() bool {
	return r == CrossHairOpacity || r == RulerOpacity
}

// ParseRole looks up a role by name or profile key, ignoring case.
func ParseRole(s string) (Role, error) {
	for i := 0; i < NumRoles; i++ {
		if strings.EqualFold(s, roleNames[i]) || strings.EqualFold(s, roleKeys[i]) {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Table maps every role to a color. Being a fixed-size array indexed by
// Role, a Table always has a value for every role.
type Table [NumRoles]RGB

// Opacity values stored in the red channel of the opacity roles.
const (
	LayeredOpacity uint8 = 0xE5
	OpaqueOpacity  uint8 = 0xFF
)

// DefaultTable returns the compiled-in default colors. When layered is
// false the display cannot draw translucent windows and the opacity roles
// default to fully opaque.
func DefaultTable(layered bool) Table {
	opacity := OpaqueOpacity
	if layered {
		opacity = LayeredOpacity
	}
	return Table{
		LineForeground:      {R: 0xFF, G: 0, B: 0},
		CrossHairBackground: {R: 0xFF, G: 0, B: 0},
		CrossHairBorder:     {R: 0x50, G: 0x50, B: 0x50},
		CrossHairHighlight:  {R: 0xFF, G: 0xFF, B: 0},
		CrossHairOpacity:    {R: opacity, G: 0, B: 0},
		RulerBackground:     {R: 0xFF, G: 0xFF, B: 0xFF},
		RulerBorder:         {R: 0, G: 0, B: 0},
		RulerOpacity:        {R: opacity, G: 0, B: 0},
	}
}

// LayeredCapability reports whether the windowing environment supports
// translucent (layered) windows.
type LayeredCapability func() bool

// ProfileStore is a key-value store that palette colors are persisted to.
//
// ReadInt returns def when the key is absent or its value cannot be read.
// UserInitiated reports whether the store belongs to a transient session
// opened by the user, in which case the palette is neither loaded from nor
// saved to it.
type ProfileStore interface {
	UserInitiated() bool
	ReadInt(key string, def int) int
	WriteInt(key string, value int)
}

// Palette is the active set of overlay colors.
//
// A Palette starts out holding its defaults and can be changed with Set,
// replaced by Load and restored with Reset. It is safe for concurrent use.
type Palette struct {
	mu       sync.RWMutex
	defaults Table
	colors   Table
}

// NewPalette creates a palette initialised to the default colors. The
// layered capability is queried once, here, to choose the default
// opacities. A nil capability is treated as supported.
func NewPalette(layered LayeredCapability) *Palette {
	supported := true
	if layered != nil {
		supported = layered()
	}
	defaults := DefaultTable(supported)
	return &Palette{defaults: defaults, colors: defaults}
}

// Get returns the active color for role. It panics if role is not valid.
func (p *Palette) Get(role Role) RGB {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.colors[role]
}

// Set changes the active color for role. It panics if role is not valid.
func (p *Palette) Set(role Role, c RGB) {
	p.mu.Lock()
	p.colors[role] = c
	p.mu.Unlock()
}

// Default returns the compiled-in default color for role.
func (p *Palette) Default(role Role) RGB {
	return p.defaults[role]
}

// Defaults returns a copy of the default table.
func (p *Palette) Defaults() Table {
	return p.defaults
}

// Snapshot returns a copy of the active colors.
func (p *Palette) Snapshot() Table {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.colors
}

// Reset restores every role to its default color.
func (p *Palette) Reset() {
	p.mu.Lock()
	p.colors = p.defaults
	p.mu.Unlock()
}

// Opacity returns the opacity (0-255) held by an opacity role.
func (p *Palette) Opacity(role Role) (uint8, error) {
	if !role.IsOpacity() {
		return 0, fmt.Errorf("%s is not an opacity role", role)
	}
	return p.Get(role).R, nil
}

// SetOpacity stores an opacity (0-255) in an opacity role.
func (p *Palette) SetOpacity(role Role, opacity uint8) error {
	if !role.IsOpacity() {
		return fmt.Errorf("%s is not an opacity role", role)
	}
	p.Set(role, RGB{R: opacity})
	return nil
}

// OpacityPercent converts a 0-255 opacity to a whole percentage.
func OpacityPercent(opacity uint8) int {
	return int(opacity) * 100 / 255
}

// Load replaces the active colors with those in store, falling back to the
// defaults for missing keys. It returns false without touching the store
// when the store is user initiated.
func (p *Palette) Load(store ProfileStore) bool {
	if store.UserInitiated() {
		return false
	}

	var loaded Table
	for _, role := range Roles() {
		loaded[role] = FromPacked(store.ReadInt(role.Key(), p.defaults[role].Packed()))
	}

	p.mu.Lock()
	p.colors = loaded
	p.mu.Unlock()
	return true
}

// Save writes every active color to store. It returns false without
// touching the store when the store is user initiated.
func (p *Palette) Save(store ProfileStore) bool {
	if store.UserInitiated() {
		return false
	}

	colors := p.Snapshot()
	for _, role := range Roles() {
		store.WriteInt(role.Key(), colors[role].Packed())
	}
	return true
}
