package observer

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/anime-shed/image-averager-go/pkg/models"
)

// PipelineEvent represents one step of loading, averaging or displaying an image
type PipelineEvent struct {
	EventType    EventType              `json:"event_type"`
	Timestamp    time.Time              `json:"timestamp"`
	Source       models.Source          `json:"source"`
	Duration     time.Duration          `json:"duration"`
	Success      bool                   `json:"success"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

// EventType represents the type of pipeline event
type EventType string

const (
	SourceLoaded        EventType = "source_loaded"
	SourceLoadFailed    EventType = "source_load_failed"
	ImageResized        EventType = "image_resized"
	ResizeFailed        EventType = "resize_failed"
	ImageAveraged       EventType = "image_averaged"
	AveragingFailed     EventType = "averaging_failed"
	ComparisonDisplayed EventType = "comparison_displayed"
	DisplayFailed       EventType = "display_failed"
)

// Observer defines the interface for event observers
type Observer interface {
	OnEvent(ctx context.Context, event PipelineEvent)
	GetObserverName() string
}

// Subject defines the interface for event publishers
type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	NotifyObservers(ctx context.Context, event PipelineEvent)
}

// LoggingObserver logs pipeline events
type LoggingObserver struct {
	logger *logrus.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver(logger *logrus.Logger) Observer {
	return &LoggingObserver{
		logger: logger,
	}
}

// OnEvent handles pipeline events by logging them
func (o *LoggingObserver) OnEvent(ctx context.Context, event PipelineEvent) {
	fields := logrus.Fields{
		"event_type": event.EventType,
		"source":     event.Source.String(),
		"duration":   event.Duration,
		"success":    event.Success,
	}

	if event.ErrorMessage != "" {
		fields["error"] = event.ErrorMessage
	}

	for k, v := range event.Metadata {
		fields[k] = v
	}

	entry := o.logger.WithFields(fields)
	switch event.EventType {
	case SourceLoaded:
		entry.Debug("Image loaded")
	case ImageResized:
		entry.Debug("Image resized")
	case ImageAveraged:
		entry.Info("Average color computed")
	case ComparisonDisplayed:
		entry.Info("Comparison window closed")
	case SourceLoadFailed:
		entry.Error("Image load failed")
	case ResizeFailed:
		entry.Error("Resize failed")
	case AveragingFailed:
		entry.Error("Averaging failed")
	case DisplayFailed:
		entry.Error("Display failed")
	default:
		entry.Info("Pipeline event occurred")
	}
}

// GetObserverName returns the observer name
func (o *LoggingObserver) GetObserverName() string {
	return "logging_observer"
}

// StatsObserver counts pipeline outcomes
type StatsObserver struct {
	mu            sync.RWMutex
	loads         int64
	loadFailures  int64
	averages      int64
	displays      int64
	failures      int64
	totalLoadTime time.Duration
}

// NewStatsObserver creates a new stats observer
func NewStatsObserver() *StatsObserver {
	return &StatsObserver{}
}

// OnEvent handles pipeline events by updating counters
func (o *StatsObserver) OnEvent(ctx context.Context, event PipelineEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch event.EventType {
	case SourceLoaded:
		o.loads++
		o.totalLoadTime += event.Duration
	case SourceLoadFailed:
		o.loadFailures++
		o.failures++
	case ImageAveraged:
		o.averages++
	case ComparisonDisplayed:
		o.displays++
	case ResizeFailed, AveragingFailed, DisplayFailed:
		o.failures++
	}
}

// GetObserverName returns the observer name
func (o *StatsObserver) GetObserverName() string {
	return "stats_observer"
}

// GetStats returns current counters
func (o *StatsObserver) GetStats() map[string]interface{} {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return map[string]interface{}{
		"loads":           o.loads,
		"load_failures":   o.loadFailures,
		"averages":        o.averages,
		"displays":        o.displays,
		"failures":        o.failures,
		"total_load_time": o.totalLoadTime,
	}
}

// EventPublisher implements the Subject interface
type EventPublisher struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher() *EventPublisher {
	return &EventPublisher{
		observers: make([]Observer, 0),
	}
}

// Subscribe adds an observer
func (p *EventPublisher) Subscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}

// Unsubscribe removes an observer
func (p *EventPublisher) Unsubscribe(observer Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, obs := range p.observers {
		if obs.GetObserverName() == observer.GetObserverName() {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			break
		}
	}
}

// NotifyObservers delivers the event to every observer in subscription order
// before returning. A panicking observer does not stop the others.
func (p *EventPublisher) NotifyObservers(ctx context.Context, event PipelineEvent) {
	p.mu.RLock()
	observers := make([]Observer, len(p.observers))
	copy(observers, p.observers)
	p.mu.RUnlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for _, observer := range observers {
		notify(ctx, observer, event)
	}
}

func notify(ctx context.Context, obs Observer, event PipelineEvent) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("observer", obs.GetObserverName()).
				WithField("panic", r).
				Error("Observer panicked while handling event")
		}
	}()
	obs.OnEvent(ctx, event)
}
