package webui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriolmo/tasacion/internal/catalog"
)

func TestDebugIndexHandler(t *testing.T) {
	webUI := &WebUI{CatalogManager: catalog.NewFixtureManager(t)}
	router := httprouter.New()
	webUI.SetWebUIRoutes(router)

	tests := []struct {
		dataType string
		title    string
		contains string
	}{
		{"vehicles", "Catalog - Vehicles", "Golf 2.0 TDI"},
		{"brands", "Catalog - Brands", "VOLKSWAGEN"},
		{"schedule", "Catalog - Depreciation Schedule", "Percentage: (float64) 84"},
		{"warnings", "Catalog - Skipped Rows", "[]catalog.Warning"},
		{"", "Choose a data type", "Please use one of the following"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/debug/?dataType="+tt.dataType, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			body := rec.Body.String()
			assert.Contains(t, body, "<title>"+tt.title+"</title>")
			assert.Contains(t, body, tt.contains)
			assert.Contains(t, body, "tasacion_coches.xlsx")
		})
	}
}
