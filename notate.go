package notate

import (
	"fmt"
	"sync"

	"github.com/notatehq/notate/pkg/physics"
	"github.com/notatehq/notate/pkg/symbol"
	"github.com/notatehq/notate/pkg/sympack"
)

// Version is the notate release version.
const Version = "0.1.0"

// Options configure engine construction.
type Option func(*config)

type config struct {
	physics bool
	packs   []*sympack.Pack
}

// WithoutPhysics skips the builtin phy and sm symbol groups.
func WithoutPhysics() Option {
	return func(c *config) {
		c.physics = false
	}
}

// WithPacks installs extra symbol packs after the builtins.
func WithPacks(packs ...*sympack.Pack) Option {
	return func(c *config) {
		c.packs = append(c.packs, packs...)
	}
}

// New builds a symbol engine with the seven builtin groups plus, by
// default, the physics and Standard Model packs. The returned engine
// should be treated as read-only once handed to concurrent users.
func New(opts ...Option) (*symbol.Engine, error) {
	cfg := &config{physics: true}
	for _, opt := range opts {
		opt(cfg)
	}

	eng := symbol.NewEngine()
	if cfg.physics {
		if err := physics.Install(eng); err != nil {
			return nil, fmt.Errorf("install physics packs: %w", err)
		}
	}
	for _, p := range cfg.packs {
		if err := p.Install(eng); err != nil {
			return nil, fmt.Errorf("install pack %q: %w", p.Group, err)
		}
	}
	return eng, nil
}

var (
	defaultOnce   sync.Once
	defaultEngine *symbol.Engine
)

// Default returns the shared default engine, built on first use with
// the physics packs installed.
func Default() *symbol.Engine {
	defaultOnce.Do(func() {
		eng, err := New()
		if err != nil {
			// the builtin packs are static data; failing to install
			// them is a programming error
			panic(err)
		}
		defaultEngine = eng
	})
	return defaultEngine
}

// Eval renders expr in one format using the default engine, in lenient
// mode.
func Eval(f symbol.Format, expr string) (string, error) {
	return Default().Parse(f, expr)
}

// EvalAll renders expr in all four formats using the default engine.
func EvalAll(expr string) (*symbol.Rendering, error) {
	return Default().Render(expr)
}
