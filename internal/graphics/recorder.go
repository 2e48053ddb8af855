package graphics

import (
	"fmt"

	"github.com/leonardinius/zsharp/internal/value"
	"github.com/leonardinius/zsharp/internal/zserrors"
)

// Recorder is a headless Renderer. It keeps a textual trace of every call,
// and tracks which assets were loaded.
type Recorder struct {
	title         string
	width, height int
	initialized   bool
	loaded        map[string]bool
	events        []string
}

func NewRecorder() *Recorder {
	return &Recorder{loaded: make(map[string]bool)}
}

// Init implements Renderer.
func (r *Recorder) Init(title string, width, height int) error {
	r.title, r.width, r.height = title, width, height
	r.initialized = true
	r.record("init %q %dx%d", title, width, height)
	return nil
}

// LoadSprite implements Renderer.
func (r *Recorder) LoadSprite(s value.Sprite) error {
	if err := r.ready(); err != nil {
		return err
	}
	r.loaded[s.Path] = true
	r.record("load sprite %q", s.Path)
	return nil
}

// DrawSprite implements Renderer.
func (r *Recorder) DrawSprite(s value.Sprite) error {
	if err := r.ready(); err != nil {
		return err
	}
	r.record("draw sprite %q at %s", s.Path, s.Position)
	return nil
}

// LoadText implements Renderer.
func (r *Recorder) LoadText(t value.Text) error {
	if err := r.ready(); err != nil {
		return err
	}
	r.loaded[t.Font] = true
	r.record("load text %q", t.Font)
	return nil
}

// DrawText implements Renderer.
func (r *Recorder) DrawText(t value.Text) error {
	if err := r.ready(); err != nil {
		return err
	}
	r.record("draw text %q at %s", t.Content, t.Position)
	return nil
}

// Events returns the recorded trace.
func (r *Recorder) Events() []string {
	return append([]string(nil), r.events...)
}

// Loaded reports whether an asset path was loaded.
func (r *Recorder) Loaded(path string) bool {
	return r.loaded[path]
}

// Window returns the parameters of the last Init call.
func (r *Recorder) Window() (string, int, int) {
	return r.title, r.width, r.height
}

func (r *Recorder) ready() error {
	if !r.initialized {
		return zserrors.ErrRuntimeGraphicsNotInitialized
	}
	return nil
}

func (r *Recorder) record(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

var _ Renderer = (*Recorder)(nil)
