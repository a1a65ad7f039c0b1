package graphics

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"sort"
	"sync"

	"raycaster/internal/logger"

	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// Where a cached texture came from
const (
	SourceFile        = "file"
	SourceProcedural  = "procedural"
	SourcePlaceholder = "placeholder"
)

// PlaceholderName is the cache key used for the placeholder texture
const PlaceholderName = ""

// extensions are tried in order for every texture name
var extensions = []string{".bmp", ".png"}

// TextureManager loads square textures of a fixed size by name. Files are
// looked up as <name>.bmp or <name>.png; known names without a file are
// generated, anything else gets the placeholder.
type TextureManager struct {
	fsys     fs.FS
	size     int
	mu       sync.Mutex
	textures map[string]*image.RGBA
	sources  map[string]string
	log      *logrus.Entry
}

// NewTextureManager creates a manager reading from fsys, which may be nil
// to use only generated textures
func NewTextureManager(fsys fs.FS, size int) *TextureManager {
	return &TextureManager{
		fsys:     fsys,
		size:     size,
		textures: make(map[string]*image.RGBA),
		sources:  make(map[string]string),
		log:      logger.For("textures"),
	}
}

// Size returns the edge length of every texture
func (tm *TextureManager) Size() int {
	return tm.size
}

// Get returns the texture for name, loading it on first use
func (tm *TextureManager) Get(name string) *image.RGBA {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.get(name)
}

func (tm *TextureManager) get(name string) *image.RGBA {
	if texture, exists := tm.textures[name]; exists {
		return texture
	}

	texture, source, err := tm.load(name)
	if err != nil {
		tm.log.WithError(err).WithField("texture", name).Warn("failed to load texture, using placeholder")
	}
	if texture == nil {
		if name != PlaceholderName {
			tm.log.WithField("texture", name).Warn("no texture with this name, using placeholder")
		}
		texture, source = Placeholder(tm.size), SourcePlaceholder
	}

	tm.textures[name] = texture
	tm.sources[name] = source
	return texture
}

func (tm *TextureManager) load(name string) (*image.RGBA, string, error) {
	if name == PlaceholderName {
		return nil, "", nil
	}

	if tm.fsys != nil {
		for _, ext := range extensions {
			img, err := decodeFile(tm.fsys, name+ext)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, "", err
			}
			return Resample(img, tm.size), SourceFile, nil
		}
	}

	if generate, ok := generators[name]; ok {
		return generate(tm.size), SourceProcedural, nil
	}
	return nil, "", nil
}

func decodeFile(fsys fs.FS, path string) (image.Image, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// Preload loads every named texture and returns how many came from files
func (tm *TextureManager) Preload(names []string) int {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	fromFiles := 0
	for _, name := range names {
		tm.get(name)
		if tm.sources[name] == SourceFile {
			fromFiles++
		}
	}
	tm.log.WithFields(logrus.Fields{
		"requested":  len(names),
		"from_files": fromFiles,
	}).Debug("textures preloaded")
	return fromFiles
}

// Source reports where a loaded texture came from, "" if it is not loaded
func (tm *TextureManager) Source(name string) string {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.sources[name]
}

// Names lists the loaded textures
func (tm *TextureManager) Names() []string {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	names := make([]string, 0, len(tm.textures))
	for name := range tm.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resample scales img to a size x size RGBA image
func Resample(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
		return dst
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
