package adaptor

import (
	"net/http"

	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"
	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// SubmitRating handles POST /ratings
func (h *RatingHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	raterID, _, ok := subjectFromContext(w, r)
	if !ok {
		return
	}

	var req request.RatingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Submit(r.Context(), raterID, &req); err != nil {
		handleServiceError(w, h.log, err, "submit rating")
		return
	}

	utils.ResponseMessage(w, http.StatusCreated, response.MsgRatingSubmitted)
}
