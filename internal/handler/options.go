package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"zerodte/internal/models"
	"zerodte/internal/pipeline"
	"zerodte/internal/service"
)

type OptionsHandler struct {
	Query     *service.ChainQueryService
	Collector *service.CollectorService
	Logger    *zap.Logger
}

func (h *OptionsHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1")
	group.GET("/options/:ticker/latest", h.latest)
	group.GET("/options/:ticker/history", h.history)
	group.GET("/options/:ticker/summary", h.summary)
	group.GET("/options/:ticker", h.byDate)
	group.GET("/tickers", h.tickers)
	group.POST("/collect", h.collectAll)
	group.POST("/collect/:ticker", h.collectTicker)
}

// @Summary Latest chain snapshot for a ticker
// @Tags options
// @Param ticker path string true "Ticker symbol"
// @Param strike_min query number false "Inclusive lower strike bound"
// @Param strike_max query number false "Inclusive upper strike bound"
// @Param atm_tolerance query number false "Keep strikes within this fraction of the underlying"
// @Success 200 {object} map[string]any
// @Router /api/v1/options/{ticker}/latest [get]
func (h *OptionsHandler) latest(c *gin.Context) {
	ticker := c.Param("ticker")
	records, err := h.Query.Latest(c.Request.Context(), ticker)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	records, err = applyStrikeFilters(c, records)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if len(records) == 0 {
		NotFound(c, "no options data found for "+strings.ToUpper(ticker))
		return
	}
	Ok(c, records, map[string]any{"count": len(records)})
}

// @Summary Chain records for a ticker, optionally for one calendar day
// @Tags options
// @Param ticker path string true "Ticker symbol"
// @Param date query string false "Collection day, YYYY-MM-DD"
// @Success 200 {object} map[string]any
// @Router /api/v1/options/{ticker} [get]
func (h *OptionsHandler) byDate(c *gin.Context) {
	ticker := c.Param("ticker")
	day, err := dateQuery(c, "date")
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid date, want YYYY-MM-DD", nil)
		return
	}
	records, err := h.Query.ByDate(c.Request.Context(), ticker, day)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if len(records) == 0 {
		NotFound(c, "no options data found for "+strings.ToUpper(ticker))
		return
	}
	Ok(c, records, map[string]any{"count": len(records)})
}

// @Summary Historical chain records inside a trailing window
// @Tags options
// @Param ticker path string true "Ticker symbol"
// @Param days query int false "Window size in days (default 30)"
// @Success 200 {object} map[string]any
// @Router /api/v1/options/{ticker}/history [get]
func (h *OptionsHandler) history(c *gin.Context) {
	ticker := c.Param("ticker")
	days := intQuery(c, "days", 30)
	records, err := h.Query.Historical(c.Request.Context(), ticker, days)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if len(records) == 0 {
		NotFound(c, "no historical options data found for "+strings.ToUpper(ticker))
		return
	}
	Ok(c, records, map[string]any{"count": len(records), "window_days": days})
}

// @Summary Aggregated view of the most recent snapshot batch
// @Tags options
// @Param ticker path string true "Ticker symbol"
// @Param date query string false "Collection day, YYYY-MM-DD"
// @Success 200 {object} service.ChainSummary
// @Router /api/v1/options/{ticker}/summary [get]
func (h *OptionsHandler) summary(c *gin.Context) {
	ticker := c.Param("ticker")
	day, err := dateQuery(c, "date")
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid date, want YYYY-MM-DD", nil)
		return
	}
	summary, err := h.Query.Summary(c.Request.Context(), ticker, day)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if summary == nil {
		NotFound(c, "no options summary found for "+strings.ToUpper(ticker))
		return
	}
	Ok(c, summary, nil)
}

// @Summary Tickers present in the store
// @Tags options
// @Success 200 {object} map[string]any
// @Router /api/v1/tickers [get]
func (h *OptionsHandler) tickers(c *gin.Context) {
	tickers, err := h.Query.Tickers(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, tickers, map[string]any{"count": len(tickers)})
}

// @Summary Trigger a collection run for all configured tickers
// @Tags collect
// @Success 200 {object} service.RunResult
// @Router /api/v1/collect [post]
func (h *OptionsHandler) collectAll(c *gin.Context) {
	result, err := h.Collector.CollectAll(c.Request.Context())
	if err != nil {
		Error(c, http.StatusServiceUnavailable, err.Error(), nil)
		return
	}
	Ok(c, result, nil)
}

// @Summary Trigger a collection run for one ticker
// @Tags collect
// @Param ticker path string true "Ticker symbol"
// @Success 200 {object} map[string]any
// @Router /api/v1/collect/{ticker} [post]
func (h *OptionsHandler) collectTicker(c *gin.Context) {
	ticker := c.Param("ticker")
	n, err := h.Collector.CollectTicker(c.Request.Context(), ticker)
	if err != nil {
		h.Logger.Warn("manual collection failed", zap.String("ticker", ticker), zap.Error(err))
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"ticker": strings.ToUpper(ticker), "rows": n}, nil)
}

func applyStrikeFilters(c *gin.Context, records []models.OptionRecord) ([]models.OptionRecord, error) {
	minRaw := strings.TrimSpace(c.Query("strike_min"))
	maxRaw := strings.TrimSpace(c.Query("strike_max"))
	if minRaw != "" || maxRaw != "" {
		low := decimal.Zero
		high := decimal.New(1, 12)
		var err error
		if minRaw != "" {
			if low, err = decimal.NewFromString(minRaw); err != nil {
				return nil, err
			}
		}
		if maxRaw != "" {
			if high, err = decimal.NewFromString(maxRaw); err != nil {
				return nil, err
			}
		}
		records = pipeline.FilterByStrikeRange(records, low, high)
	}
	if tolRaw := strings.TrimSpace(c.Query("atm_tolerance")); tolRaw != "" {
		tol, err := decimal.NewFromString(tolRaw)
		if err != nil {
			return nil, err
		}
		records = pipeline.AtTheMoney(records, tol)
	}
	return records, nil
}

func dateQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
