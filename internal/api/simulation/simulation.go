package simulation

import (
	dto "baccarat_sim/internal/api/dto/simulation"
	"baccarat_sim/internal/converter"
	"baccarat_sim/internal/model"
	"baccarat_sim/internal/service"
	"baccarat_sim/pkg/req"
	"baccarat_sim/pkg/resp"
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.SimulationService
}

type Handler struct {
	serv service.SimulationService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Run генерирует новое шу и прогоняет по нему каталог стратегий
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RunRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	runReq, err := converter.ToRunRequest(payload)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Run(r.Context(), runReq)
	if err != nil {
		h.writeServiceError(w, "Run", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRunResponse(result, h.serv.Config().StakeScale()))
}

// LastRun отдаёт последний запуск
func (h *Handler) LastRun(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.LastRun(r.Context())
	if err != nil {
		h.writeServiceError(w, "LastRun", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRunResponse(result, h.serv.Config().StakeScale()))
}

// Strategy отдаёт историю баланса и журнал одной стратегии из последнего запуска
func (h *Handler) Strategy(w http.ResponseWriter, r *http.Request) {
	position, err := model.ParsePositionStrategy(chi.URLParam(r, "position"))
	if err != nil {
		resp.WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	rule, err := model.ParseStakeRule(chi.URLParam(r, "rule"))
	if err != nil {
		resp.WriteError(w, http.StatusNotFound, err.Error())
		return
	}

	summary, err := h.serv.Strategy(r.Context(), position, rule)
	if err != nil {
		h.writeServiceError(w, "Strategy", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStrategyDetailResponse(summary))
}

// Export скачивание рейтинга последнего запуска в CSV
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	// Пишем в буфер, чтобы не отдать 200 с обрезанным файлом
	var buf bytes.Buffer
	if err := h.serv.Export(r.Context(), &buf); err != nil {
		h.writeServiceError(w, "Export", err)
		return
	}

	filename := fmt.Sprintf("strategy_analysis_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Println("Export write error:", err)
	}
}

// Config границы параметров для фронтенда
func (h *Handler) Config(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToConfigResponse(h.serv.Config()))
}

func (h *Handler) writeServiceError(w http.ResponseWriter, op string, err error) {
	var cfgErr *model.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		resp.WriteError(w, http.StatusBadRequest, cfgErr.Error())
	case errors.Is(err, model.ErrNoRun), errors.Is(err, model.ErrUnknownStrategy):
		resp.WriteError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("%s error: %v", op, err)
		resp.WriteError(w, http.StatusInternalServerError, "simulation failed")
	}
}
