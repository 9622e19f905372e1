package restapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modelLabels(t *testing.T, entry map[string]interface{}) []string {
	t.Helper()
	options, ok := entry["models"].([]interface{})
	require.True(t, ok, "models should be an array")

	labels := make([]string, 0, len(options))
	for _, o := range options {
		option, ok := o.(map[string]interface{})
		require.True(t, ok)
		labels = append(labels, option["label"].(string))
	}
	return labels
}

func TestModelsHandlerEndToEnd(t *testing.T) {
	api := createTestApi(t)

	tests := []struct {
		name     string
		endpoint string
		fuel     string
		labels   []string
	}{
		{
			name:     "wildcard keeps every fuel",
			endpoint: "/api/brands/VOLKSWAGEN/models.json?key=TEST&date=2018-05-02",
			fuel:     "Todos",
			labels: []string{
				"Golf 2.0 TDI - 150 Cv",
				"Golf 1.5 TSI - 130 Cv",
				"Golf 2.0 TDI - 115 Cv",
				"e-Golf - 136 Cv",
			},
		},
		{
			name:     "same trim with different power stays apart",
			endpoint: "/api/brands/VOLKSWAGEN/models.json?key=TEST&date=2018-05-02&fuel=Diesel",
			fuel:     "Diesel",
			labels:   []string{"Golf 2.0 TDI - 150 Cv", "Golf 2.0 TDI - 115 Cv"},
		},
		{
			name:     "period ends are inclusive",
			endpoint: "/api/brands/AUDI/models.json?key=TEST&date=2020-01-01&fuel=Gasolina",
			fuel:     "Gasolina",
			labels:   []string{"A3 Sportback 30 TFSI - 110 Cv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, model := serveApiAndRetrieveEndpoint(t, api, tt.endpoint)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			entry := entryOf(t, model)
			assert.Equal(t, tt.fuel, entry["fuel"])
			assert.NotContains(t, entry, "outcome")
			assert.Equal(t, tt.labels, modelLabels(t, entry))
		})
	}
}

func TestModelsHandlerNoModelsAvailable(t *testing.T) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/brands/SEAT/models.json?key=TEST&date=2012-01-01")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
	assert.Equal(t, "No se encontraron modelos disponibles para los criterios seleccionados.", model.Text)

	entry := entryOf(t, model)
	assert.Equal(t, "NO_MODELS_AVAILABLE", entry["outcome"])
	assert.Equal(t, "SEAT", entry["brand"])
	assert.Empty(t, modelLabels(t, entry))
}

func TestModelsHandlerRejectsBadSelectors(t *testing.T) {
	api := createTestApi(t)

	tests := []struct {
		name     string
		endpoint string
		field    string
		message  string
	}{
		{
			name:     "markup in fuel",
			endpoint: "/api/brands/SEAT/models.json?key=TEST&fuel=" + url.QueryEscape("<script>"),
			field:    "fuel",
			message:  "fuel contains invalid characters",
		},
		{
			name:     "control character in brand",
			endpoint: "/api/brands/SE%01AT/models.json?key=TEST",
			field:    "brand",
			message:  "brand contains invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := serveApiAndRetrieveBody(t, api, tt.endpoint)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, []string{tt.message}, fieldErrorsOf(t, body)[tt.field])
		})
	}
}
