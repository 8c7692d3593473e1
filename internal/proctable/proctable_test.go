package proctable

import (
	"os"
	"runtime"
	"testing"
)

func TestRunning_PIDZero(t *testing.T) {
	ok, err := Running(0)
	if err != nil || ok {
		t.Errorf("got %v, %v; want false, nil", ok, err)
	}
}

func TestRunning_Self(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" && runtime.GOOS != "windows" {
		t.Skip("no process table lookup on " + runtime.GOOS)
	}
	ok, err := Running(uint32(os.Getpid()))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("current process should be running")
	}
}

func TestChecker_ZeroIsNotRunning(t *testing.T) {
	if Checker(0) {
		t.Error("pid 0 should not be reported as running")
	}
}
