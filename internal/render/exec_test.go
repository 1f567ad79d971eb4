// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "errors"

// fakeExecutor implements executor for tests, recording invocations and
// simulating binary availability.
type fakeExecutor struct {
	available map[string]bool
	calls     [][]string
	err       error
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.available[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (f *fakeExecutor) Run(name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.err
}
