package custom

import (
	"log"
	"sync"

	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
)

// Registration is a handler and the interval it runs at when a request does not override it
type Registration struct {
	Handler         Handler
	DefaultInterval int
}

// Registry maps effect types to handlers. Registration is append-only.
type Registry struct {
	mu       sync.RWMutex
	handlers map[Type]*Registration
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[Type]*Registration),
	}
}

// Register stores handler under effectType. The first registration wins; a
// duplicate is logged and reported as already_exists without changing anything.
func (r *Registry) Register(effectType Type, handler Handler, defaultInterval int) error {
	if effectType == "" {
		return apperr.InvalidArgument("effect type is required")
	}
	if handler == nil {
		return apperr.InvalidArgumentf("handler for %s is nil", effectType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[effectType]; exists {
		log.Printf("Registry: Effect '%s' is already registered", effectType)
		return apperr.AlreadyExistsf("effect %s is already registered", effectType).
			WithMeta("effect_type", string(effectType))
	}

	r.handlers[effectType] = &Registration{
		Handler:         handler,
		DefaultInterval: defaultInterval,
	}
	return nil
}

// Lookup returns the registration for effectType
func (r *Registry) Lookup(effectType Type) (*Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.handlers[effectType]
	return reg, ok
}

// Handlers returns the live registration map, not a copy. Callers must not mutate it.
func (r *Registry) Handlers() map[Type]*Registration {
	return r.handlers
}

// Missing returns the types in known that have no registration
func (r *Registry) Missing(known ...Type) []Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var missing []Type
	for _, t := range known {
		if _, ok := r.handlers[t]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}
