package service

import "testing"

func TestNewProgressManager_NonInteractive(t *testing.T) {
	pm := NewProgressManager(false)
	if pm.IsInteractive() {
		t.Error("expected non-interactive progress manager when disabled")
	}

	var _ ProgressManager = pm
}

func TestNoOpProgressManager(t *testing.T) {
	pm := &NoOpProgressManager{}

	if pm.IsInteractive() {
		t.Error("expected NoOpProgressManager.IsInteractive() to return false")
	}

	task := pm.StartTask("test", 100)
	if task == nil {
		t.Fatal("expected non-nil task from StartTask")
	}

	task.Increment(10)
	task.Describe("testing")
	task.Complete()

	pm.Close()
}

func TestNoOpTaskProgress(t *testing.T) {
	tp := &NoOpTaskProgress{}

	tp.Increment(10)
	tp.Describe("testing")
	tp.Complete()

	var _ TaskProgress = tp
}

func TestProgressManagerImpl_Interface(t *testing.T) {
	var _ ProgressManager = &ProgressManagerImpl{}
	var _ TaskProgress = &TaskProgressImpl{}
}
