package responses

import "time"

type ExportAppointments struct {
	ObjectName string    `json:"objectName"`
	Count      int       `json:"count"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
