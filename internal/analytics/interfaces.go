package analytics

//go:generate mockgen -destination=mocks/mock_analytics.go -package=analytics_mocks github.com/falkordb-contrib/falkordb-mcp/internal/analytics Service,HTTPClient
import (
	"io"
	"net/http"
)

// Service
type Service interface {
	Disable()
	Enable()
	EmitEvent(event TrackEvent)
	NewStartupEvent(startupEventInfo StartupEventInfo) TrackEvent
	NewToolsEvent(toolsUsed string) TrackEvent
}

// dummy http client interface for our testing purposes
type HTTPClient interface {
	Post(url, contentType string, body io.Reader) (*http.Response, error)
}
