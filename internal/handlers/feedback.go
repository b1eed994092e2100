package handlers

import (
	"context"
	"net/http"
	"time"

	"toyland-backend/internal/logging"
	"toyland-backend/internal/models"
	"toyland-backend/internal/notify"
	"toyland-backend/internal/respond"
	"toyland-backend/internal/validation"
)

const notifyTimeout = 10 * time.Second

type FeedbackHandler struct {
	feedback FeedbackStore
	notifier notify.Notifier
}

func NewFeedbackHandler(feedback FeedbackStore, notifier notify.Notifier) *FeedbackHandler {
	return &FeedbackHandler{
		feedback: feedback,
		notifier: notifier,
	}
}

type SubmitFeedbackRequest struct {
	Name    string `json:"name" validate:"max=100"`
	Email   string `json:"email" validate:"omitempty,email"`
	Message string `json:"message" validate:"required,max=5000"`
	Rating  int    `json:"rating" validate:"gte=0,lte=5"`
}

// --- POST /feedbacks ---

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitFeedbackRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}
	if err := validation.Struct(&req); err != nil {
		respond.Error(w, r, err)
		return
	}

	feedback := &models.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Rating:  req.Rating,
	}

	result, err := h.feedback.Create(r.Context(), feedback)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	// Notification is best-effort and must not delay or fail the response.
	go func(ctx context.Context, message string) {
		ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
		defer cancel()
		if err := h.notifier.Publish(ctx, message); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("failed to publish feedback notification")
		}
	}(context.WithoutCancel(r.Context()), notify.FormatFeedback(feedback))

	respond.JSON(w, http.StatusCreated, result)
}

// --- GET /feedbacks ---

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.feedback.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, feedback)
}
