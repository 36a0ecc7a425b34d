package http

import (
	"io"
	"net/http"
	"strings"

	"cheongyak-calculator/domain"
	"cheongyak-calculator/logger"
	"cheongyak-calculator/service"
)

const maxBodyBytes = 1 << 16

type ScoreHandler struct {
	service *service.ScoreService
	share   *service.ShareService
	logger  logger.Logger
}

func NewScoreHandler(scoreService *service.ScoreService, shareService *service.ShareService, log logger.Logger) *ScoreHandler {
	return &ScoreHandler{
		service: scoreService,
		share:   shareService,
		logger:  log.WithFields(map[string]interface{}{"handler": "score"}),
	}
}

type scoreResponse struct {
	domain.ScoreResult
	MaxScore    int    `json:"maxScore"`
	TierLabel   string `json:"tierLabel"`
	TierMessage string `json:"tierMessage"`
	ShareReady  bool   `json:"shareReady"`
}

func (h *ScoreHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	result, ok := h.score(w, r)
	if !ok {
		return
	}

	writeJSON(w, h.logger, http.StatusOK, scoreResponse{
		ScoreResult: result,
		MaxScore:    service.MaxTotalScore,
		TierLabel:   result.Tier.Label(),
		TierMessage: result.Tier.Message(),
		ShareReady:  h.share.Available(),
	})
}

// Share scores the form and returns the Kakao card for it. When sharing is
// off the client gets a 503 notice to show instead of the share sheet.
func (h *ScoreHandler) Share(w http.ResponseWriter, r *http.Request) {
	result, ok := h.score(w, r)
	if !ok {
		return
	}

	card, err := h.share.BuildCard(result)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, card)
}

func (h *ScoreHandler) score(w http.ResponseWriter, r *http.Request) (domain.ScoreResult, bool) {
	if r.Method != http.MethodPost {
		writeStatus(w, h.logger, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		return domain.ScoreResult{}, false
	}

	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		writeStatus(w, h.logger, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Content-Type must be application/json")
		return domain.ScoreResult{}, false
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeStatus(w, h.logger, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "request body too large")
		return domain.ScoreResult{}, false
	}

	form, err := decodeScoreForm(body)
	if err != nil {
		writeError(w, h.logger, err)
		return domain.ScoreResult{}, false
	}

	result, err := h.service.Calculate(r.Context(), form)
	if err != nil {
		writeError(w, h.logger, err)
		return domain.ScoreResult{}, false
	}
	return result, true
}
