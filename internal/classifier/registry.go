package classifier

import (
	"fmt"
	"strings"
	"time"
)

// Handle is a loaded classifier addressable by id.
type Handle struct {
	ID    string
	Kind  Kind
	model Model
}

// NewHandle wraps m under id.
func NewHandle(id string, kind Kind, m Model) Handle {
	return Handle{ID: NormalizeID(id), Kind: kind, model: m}
}

// PredictDistribution returns the full class distribution for text.
func (h Handle) PredictDistribution(text string) Distribution {
	start := time.Now()
	d := h.model.PredictDistribution(text)
	inferenceDuration.WithLabelValues(h.ID).Observe(time.Since(start).Seconds())
	return d
}

// Infer returns the most probable label and its probability.
func (h Handle) Infer(text string) (string, float64) {
	best := h.PredictDistribution(text).Best()
	return best.Label, best.Probability
}

// NormalizeID lower-cases and trims an algorithm id.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Registry is the immutable set of loaded handles and the process default.
type Registry struct {
	handles map[string]Handle
	ids     []string
	def     string
}

// NewRegistry registers handles in order; a later handle with the same id is
// ignored. The default is "lr" when present, otherwise the first handle.
func NewRegistry(handles ...Handle) (*Registry, error) {
	r := &Registry{handles: make(map[string]Handle)}
	for _, h := range handles {
		if h.ID == "" || h.model == nil {
			continue
		}
		if _, dup := r.handles[h.ID]; dup {
			continue
		}
		r.handles[h.ID] = h
		r.ids = append(r.ids, h.ID)
	}
	if len(r.ids) == 0 {
		return nil, ErrNoClassifiersAvailable
	}

	r.def = r.ids[0]
	if _, ok := r.handles[AlgoLR]; ok {
		r.def = AlgoLR
	}
	for _, id := range r.ids {
		artifactsLoaded.WithLabelValues(id, string(r.handles[id].Kind)).Set(1)
	}
	return r, nil
}

// WithDefault returns a copy of r whose default is id.
func (r *Registry) WithDefault(id string) (*Registry, error) {
	id = NormalizeID(id)
	if _, ok := r.handles[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, id)
	}
	out := *r
	out.def = id
	return &out, nil
}

// Default returns the process default handle.
func (r *Registry) Default() Handle {
	return r.handles[r.def]
}

// DefaultID returns the id of the default handle.
func (r *Registry) DefaultID() string {
	return r.def
}

// IDs lists the loaded ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Get returns the handle for id.
func (r *Registry) Get(id string) (Handle, bool) {
	h, ok := r.handles[NormalizeID(id)]
	return h, ok
}

// Validate normalises id and fails with ErrInvalidAlgorithm if it is not loaded.
func (r *Registry) Validate(id string) (string, error) {
	n := NormalizeID(id)
	if _, ok := r.handles[n]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, id)
	}
	return n, nil
}

// Resolve picks the handle for one call: an explicit request first, then the
// session preference, then the default. An unknown request is an error; an
// unknown preference falls through to the default.
func (r *Registry) Resolve(requested, preferred string) (Handle, error) {
	if NormalizeID(requested) != "" {
		id, err := r.Validate(requested)
		if err != nil {
			return Handle{}, err
		}
		return r.handles[id], nil
	}
	if h, ok := r.Get(preferred); ok {
		return h, nil
	}
	return r.Default(), nil
}

// Infer classifies text with the handle id.
func (r *Registry) Infer(id, text string) (string, float64, error) {
	h, ok := r.Get(id)
	if !ok {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, id)
	}
	label, p := h.Infer(text)
	return label, p, nil
}
