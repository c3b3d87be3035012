package analytics

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultEndpoint = "https://telemetry.falkordb.dev/events"
	postTimeout     = 5 * time.Second
)

// StartupEventInfo captures the environment reported once at server start.
type StartupEventInfo struct {
	Version   string `json:"version"`
	Transport string `json:"transport"`
	ReadOnly  bool   `json:"readOnly"`
}

// TrackEvent is one analytics event. Every event gets a fresh uuid so the
// collector can deduplicate retries.
type TrackEvent struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Timestamp  time.Time              `json:"timestamp"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// service posts events best-effort through an injectable HTTP client. A
// failed or slow post never blocks a tool call; events are fired from their
// own goroutine and errors are only logged.
type service struct {
	mu       sync.RWMutex
	enabled  bool
	endpoint string
	client   HTTPClient
}

// NewService builds an analytics service. Pass nil to use the default HTTP
// client; tests inject their own.
func NewService(client HTTPClient, enabled bool) Service {
	if client == nil {
		client = &http.Client{Timeout: postTimeout}
	}
	return &service{
		enabled:  enabled,
		endpoint: defaultEndpoint,
		client:   client,
	}
}

func (s *service) Enable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = true
}

func (s *service) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = false
}

func (s *service) EmitEvent(event TrackEvent) {
	s.mu.RLock()
	enabled := s.enabled
	s.mu.RUnlock()
	if !enabled {
		return
	}

	go func() {
		body, err := json.Marshal(event)
		if err != nil {
			slog.Debug("failed to marshal analytics event", "event", event.Name, "error", err)
			return
		}
		resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(body))
		if err != nil {
			slog.Debug("failed to post analytics event", "event", event.Name, "error", err)
			return
		}
		resp.Body.Close()
	}()
}

func (s *service) NewStartupEvent(info StartupEventInfo) TrackEvent {
	return newEvent("server-startup", map[string]interface{}{
		"version":   info.Version,
		"transport": info.Transport,
		"readOnly":  info.ReadOnly,
	})
}

func (s *service) NewToolsEvent(toolsUsed string) TrackEvent {
	return newEvent("tool-call", map[string]interface{}{
		"tool": toolsUsed,
	})
}

func newEvent(name string, properties map[string]interface{}) TrackEvent {
	return TrackEvent{
		ID:         uuid.NewString(),
		Name:       name,
		Timestamp:  time.Now().UTC(),
		Properties: properties,
	}
}
