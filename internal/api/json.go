package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// envelope is the uniform response body: status plus one of message,
// data, or insights.
type envelope struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Data     any    `json:"data,omitempty"`
	Insights any    `json:"insights,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}

func successMessage(msg string) envelope {
	return envelope{Status: "success", Message: msg}
}

func successData(data any) envelope {
	return envelope{Status: "success", Data: data}
}

func successInsights(insights []string) envelope {
	return envelope{Status: "success", Insights: insights}
}

func errorBody(msg string) envelope {
	return envelope{Status: "error", Message: msg}
}
