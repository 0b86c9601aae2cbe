package responses

type ServiceInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type Health struct {
	Status   string            `json:"status"`
	Uptime   string            `json:"uptime"`
	Services map[string]string `json:"services"`
}
