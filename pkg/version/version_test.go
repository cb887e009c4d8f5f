package version

import "testing"

func TestGet(t *testing.T) {
	info := Get()
	if info.Version == "" {
		t.Error("expected version to be set")
	}
	if info.Version != Version || info.Commit != Commit || info.Date != Date {
		t.Errorf("Get() does not reflect package vars: %+v", info)
	}
}
