package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type fakeService struct {
	name    string
	deps    []string
	failErr error
	log     *[]string
	stops   int
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Start(context.Context) error {
	if f.failErr != nil {
		return f.failErr
	}
	*f.log = append(*f.log, "start "+f.name)
	return nil
}

func (f *fakeService) Stop() error {
	f.stops++
	*f.log = append(*f.log, "stop "+f.name)
	return nil
}

func TestHubStartsInDependencyOrder(t *testing.T) {
	var log []string
	h := NewHub(nil)
	for _, svc := range []*fakeService{
		{name: "telemetry", deps: []string{"audio"}, log: &log},
		{name: "audio", log: &log},
		{name: "clock", log: &log},
	} {
		if err := h.Register(svc); err != nil {
			t.Fatal(err)
		}
	}

	if err := h.StartAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	h.StopAll()
	h.StopAll()

	want := []string{
		"start audio", "start clock", "start telemetry",
		"stop telemetry", "stop clock", "stop audio",
	}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("lifecycle = %v, want %v", log, want)
	}
	if names := h.Names(); !reflect.DeepEqual(names, []string{"audio", "clock", "telemetry"}) {
		t.Errorf("Names = %v", names)
	}
}

func TestHubRollsBackOnStartFailure(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	audio := &fakeService{name: "audio", log: &log}
	h := NewHub(nil)
	h.Register(audio)
	h.Register(&fakeService{name: "telemetry", deps: []string{"audio"}, failErr: boom, log: &log})

	if err := h.StartAll(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if audio.stops != 1 {
		t.Errorf("audio stopped %d times, want 1", audio.stops)
	}
}

func TestHubRejectsBadGraphs(t *testing.T) {
	var log []string
	h := NewHub(nil)
	h.Register(&fakeService{name: "a", deps: []string{"b"}, log: &log})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &log})
	if err := h.StartAll(context.Background()); !errors.Is(err, ErrCircularDependency) {
		t.Errorf("cycle err = %v", err)
	}

	h = NewHub(nil)
	h.Register(&fakeService{name: "a", deps: []string{"missing"}, log: &log})
	if err := h.StartAll(context.Background()); err == nil {
		t.Error("missing dependency accepted")
	}
	if err := h.Register(&fakeService{name: "a", log: &log}); err == nil {
		t.Error("duplicate registration accepted")
	}
	if _, ok := h.Get("a"); !ok {
		t.Error("Get lost registered service")
	}
}
