package delivery

import (
	"net/http"
	"time"

	"camptrack/internal/domain"
	"camptrack/internal/usecase"
	"camptrack/pkg/logger"
	"camptrack/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// handles HTTP requests
type HTTPHandlers struct {
	store   *usecase.CampaignStore
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// creates new HTTP handlers
func NewHTTPHandlers(store *usecase.CampaignStore, logger *logger.Logger, metrics *metrics.Metrics) *HTTPHandlers {
	return &HTTPHandlers{
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// createCampaignRequest carries the validated form input. The store trusts
// this boundary: non-empty name, non-negative numbers, endDate on or after
// startDate, and a generated unique id.
type createCampaignRequest struct {
	Name      string   `json:"name" binding:"required"`
	StartDate string   `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string   `json:"endDate" binding:"required,datetime=2006-01-02"`
	Clicks    *int     `json:"clicks" binding:"required,gte=0"`
	Cost      *float64 `json:"cost" binding:"required,gte=0"`
	Revenue   *float64 `json:"revenue" binding:"required,gte=0"`
}

type setSortRequest struct {
	Field string `json:"field" binding:"required"`
}

// ListCampaigns returns the sorted view plus the active sort state
func (h *HTTPHandlers) ListCampaigns(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	views := h.store.SortedView()
	field, direction := h.store.SortState()

	c.JSON(http.StatusOK, gin.H{
		"data":           views,
		"total":          len(views),
		"sort_field":     field,
		"sort_direction": direction,
		"request_id":     c.GetString("request_id"),
	})
}

// CreateCampaign validates the form input, assigns an id and adds the
// campaign to the store
func (h *HTTPHandlers) CreateCampaign(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	requestID := c.GetString("request_id")

	var req createCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid campaign",
			"message":    err.Error(),
			"request_id": requestID,
		})
		return
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid campaign",
			"message":    "endDate must be on or after startDate",
			"request_id": requestID,
		})
		return
	}

	campaign := domain.Campaign{
		ID:        uuid.New().String(),
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Clicks:    *req.Clicks,
		Cost:      *req.Cost,
		Revenue:   *req.Revenue,
	}

	h.store.Add(c.Request.Context(), campaign)

	h.logger.WithContext(c.Request.Context()).WithField("campaign_id", campaign.ID).Info("Campaign created")

	c.JSON(http.StatusCreated, gin.H{
		"data":       domain.CampaignView{Campaign: campaign, Profit: campaign.Profit()},
		"request_id": requestID,
	})
}

// DeleteCampaign removes a campaign by id. An unknown id is a no-op and
// still answers 204.
func (h *HTTPHandlers) DeleteCampaign(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	id := c.Param("id")
	h.store.Remove(c.Request.Context(), id)

	h.logger.WithContext(c.Request.Context()).WithField("campaign_id", id).Info("Campaign removed")

	c.Status(http.StatusNoContent)
}

// SetSort updates the active sort column. Repeating the current column
// flips the direction.
func (h *HTTPHandlers) SetSort(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	requestID := c.GetString("request_id")

	var req setSortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid sort request",
			"message":    err.Error(),
			"request_id": requestID,
		})
		return
	}

	field, ok := domain.ParseSortField(req.Field)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Unknown sort field",
			"message":    "field must be one of name, startDate, endDate, clicks, cost, revenue, profit",
			"request_id": requestID,
		})
		return
	}

	h.store.SetSort(field)
	activeField, direction := h.store.SortState()

	c.JSON(http.StatusOK, gin.H{
		"sort_field":     activeField,
		"sort_direction": direction,
		"request_id":     requestID,
	})
}

// GetAPIInfo returns API v1 information and available endpoints
func (h *HTTPHandlers) GetAPIInfo(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	c.JSON(http.StatusOK, gin.H{
		"api_version": "v1",
		"service":     "Campaign Tracker",
		"version":     "1.0.0",
		"description": "Campaign tracking service with a locally persisted, sortable campaign store",
		"endpoints": gin.H{
			"campaigns": gin.H{
				"list":   gin.H{"method": "GET", "path": "/api/v1/campaigns"},
				"create": gin.H{"method": "POST", "path": "/api/v1/campaigns"},
				"delete": gin.H{"method": "DELETE", "path": "/api/v1/campaigns/:id"},
				"sort": gin.H{
					"method":      "PUT",
					"path":        "/api/v1/campaigns/sort",
					"description": "Set sort column; repeating the active column toggles direction",
					"fields":      []string{"name", "startDate", "endDate", "clicks", "cost", "revenue", "profit"},
				},
			},
		},
		"request_id": c.GetString("request_id"),
	})
}

// HealthCheck returns the health status of the service
func (h *HTTPHandlers) HealthCheck(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"service":    "camptrack",
		"version":    "1.0.0",
		"campaigns":  h.store.Len(),
		"request_id": c.GetString("request_id"),
	})
}
