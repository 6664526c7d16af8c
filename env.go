package sash

// ClassDefaults carries the environment's per-class defaults: the border
// thickness used when a layout does not set one, and the option bag handed
// to the draw adapter. The option bag is opaque to the core.
type ClassDefaults struct {
	Border  float64
	Options any
}

// Env is the process-wide registry of per-class defaults, the translation
// hook, and the default draw adapter. Installing a new Env shadows the
// current one for its lifetime; Close restores the previous instance, so
// environments nest. Defaults are immutable after construction - the
// registry is read for every layout and draw pass.
type Env struct {
	classes   map[string]ClassDefaults
	translate func(string) string
	adapter   DrawAdapter
	prev      *Env
	closed    bool
}

// currentEnv is the innermost installed environment; nil means built-in
// behavior (zero borders, identity translation, no default adapter).
var currentEnv *Env

// EnvOption configures a new environment.
type EnvOption func(*Env)

// WithClassDefaults registers per-class defaults, replacing any entry with
// the same class name.
func WithClassDefaults(defaults map[string]ClassDefaults) EnvOption {
	return func(e *Env) {
		for class, d := range defaults {
			e.classes[class] = d
		}
	}
}

// WithClassDefault registers defaults for a single class.
func WithClassDefault(class string, d ClassDefaults) EnvOption {
	return func(e *Env) { e.classes[class] = d }
}

// WithTranslator installs the string translation hook.
func WithTranslator(fn func(string) string) EnvOption {
	return func(e *Env) { e.translate = fn }
}

// WithAdapter installs the environment's default draw adapter. The adapter
// must outlive the environment.
func WithAdapter(a DrawAdapter) EnvOption {
	return func(e *Env) { e.adapter = a }
}

// NewEnv builds an environment and installs it as the current one. Call
// Close to restore the previously current environment.
func NewEnv(opts ...EnvOption) *Env {
	e := &Env{
		classes: make(map[string]ClassDefaults),
		prev:    currentEnv,
	}
	for _, opt := range opts {
		opt(e)
	}
	currentEnv = e
	return e
}

// Close uninstalls the environment, restoring the one it shadowed.
// Closing out of order is a programming error; Close is idempotent.
func (e *Env) Close() {
	if e.closed {
		return
	}
	e.closed = true
	if currentEnv == e {
		currentEnv = e.prev
	}
}

// Defaults returns the registered defaults for a class name. An unknown
// class yields border 0 and no options.
func (e *Env) Defaults(class string) ClassDefaults {
	if e == nil {
		return ClassDefaults{}
	}
	return e.classes[class]
}

// Adapter returns the environment's default draw adapter, or nil.
func (e *Env) Adapter() DrawAdapter {
	if e == nil {
		return nil
	}
	return e.adapter
}

// Translate maps a label through the environment's translation hook. The
// default is the identity translation.
func Translate(s string) string {
	if currentEnv != nil && currentEnv.translate != nil {
		return currentEnv.translate(s)
	}
	return s
}

// classDefaults looks up defaults in the current environment.
func classDefaults(class string) ClassDefaults {
	return currentEnv.Defaults(class)
}

// envAdapter returns the current environment's adapter, or nil.
func envAdapter() DrawAdapter {
	return currentEnv.Adapter()
}
