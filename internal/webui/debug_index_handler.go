package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"github.com/oriolmo/tasacion/internal/catalog"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

// WebUI serves a plain-text dump of the loaded catalog for operators.
type WebUI struct {
	CatalogManager *catalog.Manager
}

type debugData struct {
	Title     string
	Source    string
	DataTypes []string
	Pre       string
}

var dataTypes = []string{"vehicles", "brands", "schedule", "warnings"}

func writeDebugData(w http.ResponseWriter, title, source string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	dataStruct := debugData{
		Title:     title,
		Source:    source,
		DataTypes: dataTypes,
		Pre:       spew.Sdump(data),
	}

	if err := debugTemplate.Execute(w, dataStruct); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "vehicles":
		data = webUI.CatalogManager.Vehicles()
		title = "Catalog - Vehicles"
	case "brands":
		data = webUI.CatalogManager.Brands()
		title = "Catalog - Brands"
	case "schedule":
		data = webUI.CatalogManager.Schedule()
		title = "Catalog - Depreciation Schedule"
	case "warnings":
		data = webUI.CatalogManager.Warnings()
		title = "Catalog - Skipped Rows"
	default:
		data = map[string]string{
			"error": "Please use one of the following: vehicles, brands, schedule, warnings.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, webUI.CatalogManager.Source(), data)
}
