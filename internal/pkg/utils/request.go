package utils

import (
	"glamslot-service/internal/pkg/constvars"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

func DecodeJSONBody(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func GetDateQueryParam(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get(constvars.QueryParamsDate))
}

// ExtractBearerToken returns the token of an "Authorization: Bearer <token>" header.
func ExtractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
}
