package main

// DefaultRegistryLimit is the maximum number of distinct user symbols.
const DefaultRegistryLimit = 960

// Registry is a keyed store from symbol names to Values. A fixed subset of
// keys is marked native at construction time: native entries are immutable
// (cannot be overwritten or deleted by user code) and do not count against
// the user-symbol capacity limit.
//
// The underlying table is a plain Go map. A hash table with
// load-factor-triggered rehashing and a fixed initial bucket count would
// only reproduce what Go's built-in map already provides: amortized O(1)
// get/set with automatic, transparent growth (see DESIGN.md). The capacity
// and native-immutability invariants that actually matter for program
// behavior are enforced explicitly below.
type Registry struct {
	entries map[string]entry
	limit   int
	nUser   int
}

type entry struct {
	value    Value
	isNative bool
}

// NewRegistry creates a Registry whose user-symbol capacity is limit
// (DefaultRegistryLimit if zero or negative).
func NewRegistry(limit int) *Registry {
	if limit <= 0 {
		limit = DefaultRegistryLimit
	}
	return &Registry{entries: make(map[string]entry, 128), limit: limit}
}

// SetNative installs a native (built-in) entry. Intended for use only
// during engine initialization.
func (r *Registry) SetNative(key string, v Value) {
	r.entries[key] = entry{value: v.DeepCopy(), isNative: true}
}

// ContainsNative reports whether key names a native entry.
func (r *Registry) ContainsNative(key string) bool {
	e, ok := r.entries[key]
	return ok && e.isNative
}

// Set stores v under key as a user entry. Rejects names clashing with a
// native key or violating the user-symbol identifier grammar, and frees
// any previous value before installing the new one.
func (r *Registry) Set(key string, v Value) error {
	if !ValidUserSymbol(key) {
		return invalidIdentifierError{key}
	}
	if e, exists := r.entries[key]; exists {
		if e.isNative {
			return errNativeImmutable(key)
		}
		e.value.Free()
	} else if r.nUser >= r.limit {
		return ErrRegistryFull
	} else {
		r.nUser++
	}
	r.entries[key] = entry{value: v.DeepCopy()}
	return nil
}

// Get returns a deep copy of the value stored under key, so that callers
// may freely mutate or free their copy without damaging the registry.
func (r *Registry) Get(key string) (Value, bool) {
	e, ok := r.entries[key]
	if !ok {
		return Value{Kind: Invalid}, false
	}
	return e.value.DeepCopy(), true
}

// Delete removes a user entry. Rejects deletion of native entries.
func (r *Registry) Delete(key string) error {
	e, ok := r.entries[key]
	if !ok {
		return nil
	}
	if e.isNative {
		return errNativeImmutable(key)
	}
	e.value.Free()
	delete(r.entries, key)
	r.nUser--
	return nil
}

// List returns every registered key, native and user alike.
func (r *Registry) List() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	return keys
}
