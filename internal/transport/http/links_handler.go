package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gfranca/atalho/internal/config"
	"github.com/gfranca/atalho/internal/constants"
	"github.com/gfranca/atalho/internal/infrastructure/logger"
	appvalidation "github.com/gfranca/atalho/internal/infrastructure/validation"
	"github.com/gfranca/atalho/internal/processing/links"
	"github.com/gfranca/atalho/pkg/httputils"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type LinksHandler struct {
	cfg *config.Config
	svc *links.Service
}

func NewLinksHandler(cfg *config.Config, svc *links.Service) *LinksHandler {
	return &LinksHandler{cfg: cfg, svc: svc}
}

type createLinkRequest struct {
	URL  string `json:"url" validate:"required,notblank,http_url"`
	Code string `json:"code,omitempty" validate:"omitempty,shortcode"`
}

type linkResponse struct {
	Code        string     `json:"code"`
	URL         string     `json:"url"`
	ShortURL    string     `json:"shortUrl"`
	Clicks      int64      `json:"clicks"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastClicked *time.Time `json:"lastClicked"`
}

func (h *LinksHandler) toLinkResponse(link *links.Link) linkResponse {
	return linkResponse{
		Code:        link.Code,
		URL:         link.URL,
		ShortURL:    strings.TrimRight(h.cfg.Shortener.BaseURL, "/") + "/" + link.Code,
		Clicks:      link.Clicks,
		CreatedAt:   link.CreatedAt,
		LastClicked: link.LastClicked,
	}
}

func (h *LinksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputils.WriteAPIError(w, r, constants.ErrInvalidRequestBody)
		return
	}
	if err := appvalidation.Validate(req); err != nil {
		apiErr := constants.ErrInvalidRequestBody
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, e := range validationErrs {
				if e.Field() == "url" {
					apiErr = constants.ErrInvalidURL
					break
				}
				if e.Field() == "code" {
					apiErr = constants.ErrInvalidCodeFormat
					break
				}
			}
		}
		httputils.WriteAPIError(w, r, apiErr)
		return
	}

	link, err := h.svc.CreateLink(r.Context(), links.CreateLinkInput{
		URL:        req.URL,
		CustomCode: req.Code,
	})
	if err != nil {
		switch {
		case errors.Is(err, links.ErrInvalidURL):
			httputils.WriteAPIError(w, r, constants.ErrInvalidURL)
		case errors.Is(err, links.ErrInvalidCode):
			httputils.WriteAPIError(w, r, constants.ErrInvalidCodeFormat)
		case errors.Is(err, links.ErrCodeInUse):
			httputils.WriteAPIError(w, r, constants.ErrCodeInUse)
		case errors.Is(err, links.ErrCodeExhausted):
			logger.Error("code generation exhausted", zap.Error(err))
			httputils.WriteAPIError(w, r, constants.ErrInternalError)
		default:
			logger.Error("failed to create link", zap.Error(err))
			httputils.WriteAPIError(w, r, constants.ErrInternalError)
		}
		return
	}

	httputils.WriteAPISuccess(w, r, constants.SuccessLinkCreated, h.toLinkResponse(link))
}

func (h *LinksHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.ListLinks(r.Context())
	if err != nil {
		logger.Error("failed to list links", zap.Error(err))
		httputils.WriteAPIError(w, r, constants.ErrInternalError)
		return
	}

	out := make([]linkResponse, 0, len(all))
	for _, link := range all {
		out = append(out, h.toLinkResponse(link))
	}

	httputils.WriteAPISuccess(w, r, constants.SuccessLinksListed, out)
}

func (h *LinksHandler) Stats(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	link, err := h.svc.GetLink(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, links.ErrNotFound):
			httputils.WriteAPIError(w, r, constants.ErrLinkNotFound)
		default:
			logger.Error("failed to fetch link stats", zap.Error(err), zap.String("code", code))
			httputils.WriteAPIError(w, r, constants.ErrInternalError)
		}
		return
	}

	httputils.WriteAPISuccess(w, r, constants.SuccessStatsFound, h.toLinkResponse(link))
}

func (h *LinksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	if err := h.svc.DeleteLink(r.Context(), code); err != nil {
		switch {
		case errors.Is(err, links.ErrNotFound):
			httputils.WriteAPIError(w, r, constants.ErrLinkNotFound)
		default:
			logger.Error("failed to delete link", zap.Error(err), zap.String("code", code))
			httputils.WriteAPIError(w, r, constants.ErrInternalError)
		}
		return
	}

	httputils.WriteAPISuccess(w, r, constants.SuccessLinkDeleted, nil)
}

// Redirect resolves a code and sends the visitor to the target. The click is
// recorded atomically before the redirect is written; a store fault fails the
// whole request rather than redirecting with a lost click.
func (h *LinksHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	rd, err := h.svc.Resolve(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, links.ErrNotFound):
			httputils.WriteAPIError(w, r, constants.ErrLinkNotFound)
		default:
			logger.Error("failed to resolve code", zap.Error(err), zap.String("code", code))
			httputils.WriteAPIError(w, r, constants.ErrInternalError)
		}
		return
	}

	http.Redirect(w, r, rd.Target, h.cfg.Shortener.RedirectStatus)
}
