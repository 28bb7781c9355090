package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"camptrack/internal/domain"
	"camptrack/internal/usecase"
	"camptrack/pkg/logger"
	"camptrack/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// promauto registers against the default registry, so the package shares
// one instance across tests
var testMetrics = metrics.New()

type nopPersistence struct{}

func (nopPersistence) Load(ctx context.Context) ([]domain.Campaign, error)     { return nil, nil }
func (nopPersistence) Save(ctx context.Context, items []domain.Campaign) error { return nil }

func newTestRouter(t *testing.T) (*usecase.CampaignStore, http.Handler) {
	t.Helper()

	log := logger.New("error")
	store := usecase.NewCampaignStore(nopPersistence{}, log, testMetrics)
	handlers := NewHTTPHandlers(store, log, testMetrics)
	router := NewHTTPRouter(handlers, log, testMetrics, 5*time.Second, 1000)
	return store, router.SetupRoutes()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestCreateCampaign(t *testing.T) {
	store, router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/campaigns",
		`{"name":"Launch","startDate":"2024-01-01","endDate":"2024-01-10","clicks":100,"cost":50,"revenue":80}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data domain.CampaignView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.ID)
	assert.Equal(t, "Launch", resp.Data.Name)
	assert.Equal(t, 30.0, resp.Data.Profit)
	assert.Equal(t, 1, store.Len())
}

func TestCreateCampaignRejectsInvalidInput(t *testing.T) {
	_, router := newTestRouter(t)

	cases := map[string]string{
		"missing name":     `{"startDate":"2024-01-01","endDate":"2024-01-10","clicks":1,"cost":1,"revenue":1}`,
		"bad date format":  `{"name":"X","startDate":"01/01/2024","endDate":"2024-01-10","clicks":1,"cost":1,"revenue":1}`,
		"negative clicks":  `{"name":"X","startDate":"2024-01-01","endDate":"2024-01-10","clicks":-1,"cost":1,"revenue":1}`,
		"negative cost":    `{"name":"X","startDate":"2024-01-01","endDate":"2024-01-10","clicks":1,"cost":-1,"revenue":1}`,
		"end before start": `{"name":"X","startDate":"2024-02-01","endDate":"2024-01-01","clicks":1,"cost":1,"revenue":1}`,
	}

	for name, body := range cases {
		w := doJSON(t, router, http.MethodPost, "/api/v1/campaigns", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestCreateCampaignAcceptsZeroValues(t *testing.T) {
	_, router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/campaigns",
		`{"name":"Zero","startDate":"2024-01-01","endDate":"2024-01-01","clicks":0,"cost":0,"revenue":0}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDeleteCampaignIsIdempotent(t *testing.T) {
	store, router := newTestRouter(t)
	store.Add(context.Background(), domain.Campaign{ID: "a", Name: "A"})

	w := doJSON(t, router, http.MethodDelete, "/api/v1/campaigns/a", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, store.Len())

	// unknown id still answers 204
	w = doJSON(t, router, http.MethodDelete, "/api/v1/campaigns/a", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListCampaignsReturnsSortedView(t *testing.T) {
	store, router := newTestRouter(t)
	store.Add(context.Background(), domain.Campaign{ID: "a", Name: "X", Cost: 50, Revenue: 80})
	store.Add(context.Background(), domain.Campaign{ID: "b", Name: "Y", Cost: 10, Revenue: 100})

	w := doJSON(t, router, http.MethodPut, "/api/v1/campaigns/sort", `{"field":"profit"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPut, "/api/v1/campaigns/sort", `{"field":"profit"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/campaigns", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data          []domain.CampaignView `json:"data"`
		Total         int                   `json:"total"`
		SortField     string                `json:"sort_field"`
		SortDirection string                `json:"sort_direction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "profit", resp.SortField)
	assert.Equal(t, "desc", resp.SortDirection)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "b", resp.Data[0].ID)
	assert.Equal(t, 90.0, resp.Data[0].Profit)
}

func TestSetSortRejectsUnknownField(t *testing.T) {
	_, router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/api/v1/campaigns/sort", `{"field":"budget"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/campaigns/sort", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}
