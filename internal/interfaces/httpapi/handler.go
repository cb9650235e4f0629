package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/match-tally/internal/domain/tally"
	"github.com/riskibarqy/match-tally/internal/platform/logging"
	"github.com/riskibarqy/match-tally/internal/usecase"
)

type Handler struct {
	tallyService *usecase.TallyService
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewHandler(tallyService *usecase.TallyService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		tallyService: tallyService,
		logger:       logger,
		validator:    validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeBody fills dst from the JSON request body. An empty body leaves dst
// at its zero value when allowEmpty is set.
func decodeBody(r *http.Request, dst any, allowEmpty bool) error {
	if allowEmpty && (r.Body == nil || r.ContentLength == 0) {
		return nil
	}

	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStats")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, catalogToDTO())
}

func (h *Handler) GetTally(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTally")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, stateToDTO(h.tallyService.State()))
}

func (h *Handler) GetTeamRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRecord")
	defer span.End()

	team, err := parseTeamParam(r.PathValue("team"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.tallyService.Record(team)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recordToDTO(team, record))
}

func (h *Handler) SetActiveTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetActiveTeam")
	defer span.End()

	var req setActiveTeamRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := parseTeamParam(req.Team)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.tallyService.SetActiveTeam(team); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, activeTeamDTO{ActiveTeam: string(team)})
}

func (h *Handler) IncrementStat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IncrementStat")
	defer span.End()

	h.mutateStat(ctx, w, r, h.tallyService.Increment)
}

func (h *Handler) DecrementStat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DecrementStat")
	defer span.End()

	h.mutateStat(ctx, w, r, h.tallyService.Decrement)
}

func (h *Handler) mutateStat(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	mutate func(context.Context, tally.StatName) (tally.Record, error),
) {
	stat, err := tally.ParseStatName(r.PathValue("stat"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err))
		return
	}

	record, err := mutate(ctx, stat)
	if err != nil {
		h.logger.WarnContext(ctx, "update stat failed", "stat", stat, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recordToDTO(h.tallyService.ActiveTeam(), record))
}

// ResetTeam answers an unconfirmed request with the prompt to show. The
// client repeats the call with confirm=true to go ahead.
func (h *Handler) ResetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetTeam")
	defer span.End()

	team, err := parseTeamParam(r.PathValue("team"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req resetTeamRequest
	if err := decodeBody(r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}

	var prompt string
	reset, err := h.tallyService.Reset(ctx, team, usecase.ConfirmerFunc(func(_ context.Context, p string) (bool, error) {
		prompt = p
		return req.Confirm, nil
	}))
	if err != nil {
		h.logger.WarnContext(ctx, "reset team failed", "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	resp := resetTeamDTO{Team: string(team), Reset: reset}
	if reset {
		record, err := h.tallyService.Record(team)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		dto := recordToDTO(team, record)
		resp.Record = &dto
	} else {
		resp.Prompt = prompt
	}

	writeSuccess(ctx, w, http.StatusOK, resp)
}

func parseTeamParam(raw string) (tally.Team, error) {
	team, err := tally.ParseTeam(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
	}
	return team, nil
}
