package helper

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MultiError collect error by key
type MultiError struct {
	lock sync.Mutex
	errs map[string]string
}

// NewMultiError constructor
func NewMultiError() *MultiError {
	return &MultiError{errs: make(map[string]string)}
}

// Append error to multierror
func (m *MultiError) Append(key string, err error) *MultiError {
	m.lock.Lock()
	defer m.lock.Unlock()
	if err != nil {
		m.errs[key] = err.Error()
	}
	return m
}

// HasError check if err is exist
func (m *MultiError) HasError() bool {
	return len(m.errs) != 0
}

// IsNil check if err is nil
func (m *MultiError) IsNil() bool {
	return len(m.errs) == 0
}

// ToMap return list map of error
func (m *MultiError) ToMap() map[string]string {
	return m.errs
}

// Merge from another multi error
func (m *MultiError) Merge(e *MultiError) *MultiError {
	for k, v := range e.ToMap() {
		m.Append(k, errors.New(v))
	}
	return m
}

// Error implement error from multiError, sorted by key
func (m *MultiError) Error() string {
	keys := make([]string, 0, len(m.errs))
	for k := range m.errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var str []string
	for _, k := range keys {
		str = append(str, fmt.Sprintf("%s: %s", k, m.errs[k]))
	}
	return strings.Join(str, "\n")
}
