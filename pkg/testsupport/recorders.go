package testsupport

import "sync"

// ChangeCall is one recorded OnChange invocation.
type ChangeCall struct {
	Value string
	Name  string
}

// ChangeRecorder captures change callbacks so tests can assert call counts and
// arguments without a real form behind the field.
type ChangeRecorder struct {
	mu    sync.Mutex
	calls []ChangeCall
}

// Handler returns a callback compatible with field.ChangeHandler.
func (r *ChangeRecorder) Handler() func(value, name string) {
	return func(value, name string) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, ChangeCall{Value: value, Name: name})
	}
}

// Calls returns a copy of the recorded calls in order.
func (r *ChangeRecorder) Calls() []ChangeCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ChangeCall(nil), r.calls...)
}

// Count reports how many calls were recorded.
func (r *ChangeRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Last returns the latest call; ok is false when nothing was recorded.
func (r *ChangeRecorder) Last() (ChangeCall, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return ChangeCall{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// ValidatorStub returns canned messages and records every value it was asked
// to validate.
type ValidatorStub struct {
	mu       sync.Mutex
	Messages []string
	values   []string
}

// Func returns a callback compatible with field.Validator.
func (v *ValidatorStub) Func() func(value string) []string {
	return func(value string) []string {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.values = append(v.values, value)
		return append([]string(nil), v.Messages...)
	}
}

// Values returns the validated values in call order.
func (v *ValidatorStub) Values() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.values...)
}

// Count reports how many times the validator ran.
func (v *ValidatorStub) Count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.values)
}
