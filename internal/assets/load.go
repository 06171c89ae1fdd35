package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the manifest path inside an asset FS.
const ManifestFile = "manifest.yaml"

// ErrNotFound is returned when a requested asset id is not in the pack.
var ErrNotFound = errors.New("assets: not found")

// Provider resolves asset ids to loaded assets.
type Provider interface {
	Sprite(id string) (*Sprite, error)
	Sound(id string) (*Sound, error)
}

// Pack holds every resolved asset of a manifest.
type Pack struct {
	sprites map[string]*Sprite
	sounds  map[string]*Sound
}

var _ Provider = (*Pack)(nil)

// Sprite returns the sprite with the given id.
func (p *Pack) Sprite(id string) (*Sprite, error) {
	s, ok := p.sprites[id]
	if !ok {
		return nil, fmt.Errorf("%w: sprite %q", ErrNotFound, id)
	}
	return s, nil
}

// Sound returns the sound with the given id.
func (p *Pack) Sound(id string) (*Sound, error) {
	s, ok := p.sounds[id]
	if !ok {
		return nil, fmt.Errorf("%w: sound %q", ErrNotFound, id)
	}
	return s, nil
}

// ReadManifest parses the manifest at the root of fsys.
func ReadManifest(fsys fs.FS) (Manifest, error) {
	var m Manifest
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return m, fmt.Errorf("assets: cannot read manifest: %w", err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("assets: cannot parse manifest: %w", err)
	}
	return m, nil
}

// Load resolves every asset in the manifest of fsys concurrently and waits for all of them.
// The first failure cancels the remaining loads and is returned.
// out may be nil, in which case sounds are silent.
func Load(ctx context.Context, fsys fs.FS, out Output) (*Pack, error) {
	m, err := ReadManifest(fsys)
	if err != nil {
		return nil, err
	}
	return LoadManifest(ctx, fsys, m, out)
}

// LoadManifest resolves the assets described by m, reading sprite files from fsys.
func LoadManifest(ctx context.Context, fsys fs.FS, m Manifest, out Output) (*Pack, error) {
	pack := &Pack{
		sprites: make(map[string]*Sprite, len(m.Sprites)),
		sounds:  make(map[string]*Sound, len(m.Sounds)),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for id, spec := range m.Sprites {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := resolveSprite(fsys, id, spec)
			if err != nil {
				return err
			}
			mu.Lock()
			pack.sprites[id] = s
			mu.Unlock()
			return nil
		})
	}
	for id, spec := range m.Sounds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := synthesize(id, spec, out)
			if err != nil {
				return err
			}
			mu.Lock()
			pack.sounds[id] = s
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pack, nil
}
