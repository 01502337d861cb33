//go:build !manifold

package manifold

import "testing"

func TestNewReportsUnavailable(t *testing.T) {
	k, err := New()
	if err == nil {
		t.Fatal("New() succeeded without the manifold build tag")
	}
	if k != nil {
		t.Error("New() returned a kernel alongside the error")
	}
}
