package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/agendasalud/backend/models"
)

var exportHeaders = []string{"Fecha", "Hora inicio", "Hora fin", "Título", "Centro", "Estado", "Responsable"}

// Export downloads the filtered monthly schedule as a spreadsheet.
// Same filter and ordering as the listing endpoint; formato=csv for
// CSV, anything else gets xlsx.
func (h *ActividadHandler) Export(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := queryActividades(filter)
	if err != nil {
		log.Printf("Error exporting actividades: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	stamp := time.Now().Format("20060102_150405")
	if r.URL.Query().Get("formato") == "csv" {
		data, err := actividadesCSV(rows)
		if err != nil {
			log.Printf("Error generating CSV: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=actividades_%s.csv", stamp))
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	f, err := actividadesExcel(rows, filter)
	if err != nil {
		log.Printf("Error generating Excel file: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	buffer, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("Error writing Excel file: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=actividades_%s.xlsx", stamp))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

func exportRecord(a models.ActividadConNombres) []string {
	usuario := ""
	if a.UsuarioNombre != nil {
		usuario = *a.UsuarioNombre
	}
	return []string{
		a.Fecha.String(),
		a.HoraInicio.String(),
		a.HoraFin.String(),
		a.Titulo,
		a.CentroNombre,
		a.Estado,
		usuario,
	}
}

func actividadesCSV(rows []models.ActividadConNombres) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, a := range rows {
		if err := writer.Write(exportRecord(a)); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func actividadesExcel(rows []models.ActividadConNombres, filter listFilter) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Actividades"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	title := "Agenda de actividades"
	if filter.Mes != 0 {
		title = fmt.Sprintf("Agenda de actividades %02d/%d", filter.Mes, filter.Anio)
	}
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	f.SetCellValue(sheetName, "A1", title)
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	for colIdx, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, 3)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, a := range rows {
		for colIdx, value := range exportRecord(a) {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+4)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	return f, nil
}
