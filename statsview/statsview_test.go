package statsview

import "testing"

func TestURL(t *testing.T) {
	if got := New("").URL(); got != "http://localhost:12600/debug/statsview" {
		t.Errorf("default URL incorrect. got: %s", got)
	}
	if got := New("127.0.0.1:9000").URL(); got != "http://127.0.0.1:9000/debug/statsview" {
		t.Errorf("URL incorrect. got: %s", got)
	}
}

func TestStopWithoutStart(t *testing.T) {
	s := New("")
	s.Stop()
	if s.mgr != nil {
		t.Error("server started by Stop")
	}
}
