package observer

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type recordingObserver struct {
	name   string
	mu     sync.Mutex
	events []AnalysisEvent
}

func (r *recordingObserver) OnEvent(ctx context.Context, event AnalysisEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) GetObserverName() string { return r.name }

type panickingObserver struct{}

func (panickingObserver) OnEvent(ctx context.Context, event AnalysisEvent) { panic("boom") }
func (panickingObserver) GetObserverName() string                           { return "panicking" }

func TestMetricsObserver_Counts(t *testing.T) {
	m := NewMetricsObserver()
	ctx := context.Background()

	m.OnEvent(ctx, AnalysisEvent{EventType: AnalysisStarted})
	m.OnEvent(ctx, AnalysisEvent{EventType: ImageFetched, Metadata: map[string]interface{}{"image_bytes": 2048}})
	m.OnEvent(ctx, AnalysisEvent{EventType: AnalysisCompleted, ProcessingTime: 2 * time.Second})
	m.OnEvent(ctx, AnalysisEvent{EventType: AnalysisStarted})
	m.OnEvent(ctx, AnalysisEvent{EventType: ImageFetchFailed})
	m.OnEvent(ctx, AnalysisEvent{EventType: AnalysisStarted})
	m.OnEvent(ctx, AnalysisEvent{EventType: AnalysisFailed})
	m.OnEvent(ctx, AnalysisEvent{EventType: AnalysisStarted})
	m.OnEvent(ctx, AnalysisEvent{EventType: AnalysisCompleted, ProcessingTime: 4 * time.Second})

	got := m.GetMetrics()
	want := Snapshot{
		TotalAnalyses:        4,
		SuccessfulAnalyses:   2,
		FetchFailures:        1,
		AnalysisFailures:     1,
		BytesFetched:         2048,
		AvgProcessingTimeSec: 3,
	}
	if got != want {
		t.Errorf("GetMetrics() = %+v, want %+v", got, want)
	}
}

func TestEventPublisher_NotifiesAllObservers(t *testing.T) {
	p := NewEventPublisher()
	a := &recordingObserver{name: "a"}
	b := &recordingObserver{name: "b"}
	p.Subscribe(a)
	p.Subscribe(b)
	p.Subscribe(panickingObserver{})

	ctx, cancel := context.WithCancel(context.Background())
	p.NotifyObservers(ctx, AnalysisEvent{EventType: AnalysisStarted, ImageURL: "http://x"})
	cancel()
	p.Wait()

	for _, obs := range []*recordingObserver{a, b} {
		if len(obs.events) != 1 {
			t.Fatalf("observer %s: expected 1 event, got %d", obs.name, len(obs.events))
		}
		if obs.events[0].Timestamp.IsZero() {
			t.Errorf("observer %s: expected timestamp to be filled in", obs.name)
		}
	}

	p.Unsubscribe(a)
	p.NotifyObservers(context.Background(), AnalysisEvent{EventType: AnalysisCompleted})
	p.Wait()

	if len(a.events) != 1 {
		t.Errorf("Expected unsubscribed observer to receive nothing more, got %d events", len(a.events))
	}
	if len(b.events) != 2 {
		t.Errorf("Expected remaining observer to receive 2 events, got %d", len(b.events))
	}
}

func TestLoggingObserver_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})

	o := NewLoggingObserver(l)
	o.OnEvent(context.Background(), AnalysisEvent{
		EventType:    AnalysisFailed,
		RequestID:    "req-1",
		ImageURL:     "https://example.com/a.png",
		ErrorType:    "analysis",
		ErrorMessage: "provider timeout",
	})

	out := buf.String()
	for _, want := range []string{`"request_id":"req-1"`, `"error_type":"analysis"`, `"level":"error"`, "Greenery analysis failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log output to contain %s, got %s", want, out)
		}
	}
}
