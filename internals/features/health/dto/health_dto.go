package dto

// HealthResponse dikirim mentah (tanpa envelope) agar mudah dibaca load balancer.
type HealthResponse struct {
	Status    string   `json:"status"`
	Timestamp string   `json:"timestamp"`
	Services  Services `json:"services"`
}

type Services struct {
	Database DatabaseHealth `json:"database"`
	Memory   MemoryHealth   `json:"memory"`
	Uptime   int64          `json:"uptime"` // detik
}

type DatabaseHealth struct {
	Status       string `json:"status"`
	ResponseTime string `json:"responseTime,omitempty"`
	Error        string `json:"error,omitempty"`
}

// MemoryHealth dalam MB.
type MemoryHealth struct {
	Used       uint64 `json:"used"`
	Total      uint64 `json:"total"`
	Percentage int    `json:"percentage"`
}

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)
