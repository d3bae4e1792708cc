package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/havenbridge/crisis-sentinel/backend/internal/analyzer"
	"github.com/havenbridge/crisis-sentinel/backend/internal/assessor"
	"github.com/havenbridge/crisis-sentinel/backend/internal/audit"
	"github.com/havenbridge/crisis-sentinel/backend/internal/config"
	"github.com/havenbridge/crisis-sentinel/backend/internal/history"
	"github.com/havenbridge/crisis-sentinel/backend/internal/intervention"
	"github.com/havenbridge/crisis-sentinel/backend/internal/metrics"
	"github.com/havenbridge/crisis-sentinel/backend/internal/resources"
	"github.com/havenbridge/crisis-sentinel/backend/internal/responder"
	"github.com/havenbridge/crisis-sentinel/backend/internal/risk"
)

// HandlerConfig wires the pipeline components into the HTTP layer.
type HandlerConfig struct {
	Config    *config.Config
	Emotion   *analyzer.EmotionClassifier
	History   history.Store
	Assessor  *assessor.Assessor
	Responder responder.Responder
	Directory *resources.Directory
	Audit     *audit.Logger
	Logger    *log.Logger
}

// AssessRequest is the inbound message envelope.
type AssessRequest struct {
	SessionID   string `json:"session_id"`
	Message     string `json:"message"`
	CountryCode string `json:"country_code,omitempty"`
}

// AssessResponse is returned to the caller. It never echoes the raw
// message.
type AssessResponse struct {
	RequestID      string                      `json:"request_id"`
	Level          risk.Level                  `json:"level"`
	Categories     []string                    `json:"categories,omitempty"`
	Modifiers      []string                    `json:"modifiers,omitempty"`
	TrendEscalated bool                        `json:"trend_escalated"`
	Rationale      string                      `json:"rationale"`
	Intervention   intervention.Type           `json:"intervention"`
	Emotion        emotionSummary              `json:"emotion"`
	SupportMessage string                      `json:"support_message,omitempty"`
	Resources      *resources.CountryResources `json:"resources,omitempty"`
}

type emotionSummary struct {
	Label     string  `json:"label"`
	Intensity float64 `json:"intensity"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// AssessHandler runs the full per-message pipeline: classify emotion,
// append to the session history, assess with a trailing snapshot, select
// the intervention tier and attach resources on HIGH/CRITICAL.
func AssessHandler(hc *HandlerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		requestID := uuid.New().String()

		if r.Method != http.MethodPost {
			sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "POST required", requestID)
			return
		}

		var req AssessRequest
		r.Body = http.MaxBytesReader(w, r.Body, hc.Config.Server.MaxRequestSize)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			hc.logError("Failed to decode assess request %s: %v", requestID, err)
			sendError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body", requestID)
			return
		}
		if req.SessionID == "" || req.Message == "" {
			sendError(w, http.StatusBadRequest, "invalid_request", "session_id and message are required", requestID)
			return
		}

		// Emotion first: the state is appended before assessment so the
		// current message participates in its own session trend.
		state := hc.Emotion.Classify(req.Message)
		hc.History.Append(req.SessionID, state)

		snapshot := history.SessionView{Store: hc.History, SessionID: req.SessionID}
		result := hc.Assessor.Assess(req.Message, req.SessionID, snapshot)

		tier := intervention.Select(result)

		metrics.AssessmentsTotal.Inc()
		metrics.RecordLevel(result.Level.String())
		metrics.LatencyHistogram.Observe(time.Since(startTime).Seconds())
		for _, cat := range result.Categories {
			metrics.RecordCategory(cat)
		}
		for _, fam := range result.Modifiers {
			metrics.RecordModifier(fam)
		}
		if result.TrendEscalated {
			metrics.TrendEscalations.Inc()
		}
		if result.Failed {
			metrics.FailSafeTotal.Inc()
		}

		if result.Level >= risk.High {
			hc.logInfo("High-risk assessment request=%s session=%s level=%s categories=%d modifiers=%d trend=%v",
				requestID, req.SessionID, result.Level, len(result.Categories), len(result.Modifiers), result.TrendEscalated)
			if hc.Audit != nil {
				hc.Audit.Log(audit.Entry{
					RequestID:    requestID,
					SessionID:    req.SessionID,
					Level:        result.Level,
					Categories:   result.Categories,
					Modifiers:    result.Modifiers,
					Trend:        result.TrendEscalated,
					Intervention: string(tier),
					Failed:       result.Failed,
					Latency:      time.Since(startTime),
				})
			}
		}

		resp := AssessResponse{
			RequestID:      requestID,
			Level:          result.Level,
			Categories:     result.Categories,
			Modifiers:      result.Modifiers,
			TrendEscalated: result.TrendEscalated,
			Rationale:      result.Rationale,
			Intervention:   tier,
			Emotion:        emotionSummary{Label: state.Label, Intensity: state.Intensity},
		}

		if result.Level >= risk.High {
			country := hc.Directory.ForCountry(req.CountryCode)
			resp.Resources = &country
			if hc.Responder != nil {
				resp.SupportMessage = hc.Responder.CrisisMessage(req.CountryCode, result.Level)
			}
		}

		sendJSON(w, http.StatusOK, resp)
	}
}

// EmotionRequest is the standalone classification envelope.
type EmotionRequest struct {
	Message string `json:"message"`
}

// EmotionHandler exposes the emotion classifier without touching session
// history; callers that want trend tracking use /api/assess.
func EmotionHandler(hc *HandlerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()

		if r.Method != http.MethodPost {
			sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "POST required", requestID)
			return
		}

		var req EmotionRequest
		r.Body = http.MaxBytesReader(w, r.Body, hc.Config.Server.MaxRequestSize)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			sendError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body", requestID)
			return
		}
		if req.Message == "" {
			sendError(w, http.StatusBadRequest, "invalid_request", "message is required", requestID)
			return
		}

		sendJSON(w, http.StatusOK, hc.Emotion.Classify(req.Message))
	}
}

// SessionSummaryHandler condenses a session's recorded emotional sequence
// (dominant label, intensity stats, trend). Labels and numbers only; no
// message text is ever stored or returned.
func SessionSummaryHandler(hc *HandlerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()

		sessionID := r.URL.Query().Get("session_id")
		if sessionID == "" {
			sendError(w, http.StatusBadRequest, "invalid_request", "session_id is required", requestID)
			return
		}

		states, err := hc.History.ReadRecent(sessionID, 0)
		if err != nil {
			hc.logError("Failed to read session history %s: %v", requestID, err)
			sendError(w, http.StatusInternalServerError, "history_unavailable", "Failed to read session history", requestID)
			return
		}

		sendJSON(w, http.StatusOK, history.Summarize(states))
	}
}

// ResourcesHandler serves the directory for a country code.
func ResourcesHandler(hc *HandlerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sendJSON(w, http.StatusOK, hc.Directory.ForCountry(r.URL.Query().Get("country")))
	}
}

func sendJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func sendError(w http.ResponseWriter, status int, code, message, requestID string) {
	sendJSON(w, status, errorResponse{Error: code, Message: message, RequestID: requestID})
}

func (hc *HandlerConfig) logInfo(format string, args ...interface{}) {
	if hc.Logger != nil {
		hc.Logger.Printf("[INFO] "+format, args...)
	}
}

func (hc *HandlerConfig) logError(format string, args ...interface{}) {
	if hc.Logger != nil {
		hc.Logger.Printf("[ERROR] "+format, args...)
	}
}
