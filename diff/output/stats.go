package output

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/viant/gpmldiff/model"
)

const (
	EventInsert    = "insert"
	EventDelete    = "delete"
	EventModify    = "modify"
	EventAttribute = "attribute"
)

// Stats counts diff events
type Stats struct {
	gatherer prometheus.Gatherer
	events   *prometheus.CounterVec
	textfile string
}

func (s *Stats) Insert(element *model.Element) {
	s.events.WithLabelValues(EventInsert, string(element.ObjectType)).Inc()
}

func (s *Stats) Delete(element *model.Element) {
	s.events.WithLabelValues(EventDelete, string(element.ObjectType)).Inc()
}

func (s *Stats) ModifyStart(old, new *model.Element) {
	s.events.WithLabelValues(EventModify, string(old.ObjectType)).Inc()
}

func (s *Stats) ModifyAttr(attr, old, new string) {
	s.events.WithLabelValues(EventAttribute, attr).Inc()
}

func (s *Stats) ModifyEnd() {}

// Events returns event counter, labels are event and object type (attribute tag for attribute events)
func (s *Stats) Events() *prometheus.CounterVec {
	return s.events
}

// Flush exports counters in text exposition format when textfile is set
func (s *Stats) Flush() error {
	if s.textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(s.textfile, s.gatherer); err != nil {
		return fmt.Errorf("failed to write metrics %v: %w", s.textfile, err)
	}
	return nil
}

// NewStats creates stats outputter registering counters with registry, nil registry uses a private one
func NewStats(registry *prometheus.Registry, textfile string) *Stats {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	return &Stats{
		gatherer: registry,
		textfile: textfile,
		events: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "gpmldiff_events_total",
				Help: "Total number of diff events",
			},
			[]string{"event", "type"},
		),
	}
}
