package main

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/grange_backend/config"
	"github.com/mmdatafocus/grange_backend/models"
	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheet       = "Sheet1"
	exportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportDateLayout  = "2006-01-02"
)

var cuyReportHeadings = []interface{}{
	"Earring", "Race", "Genre", "Birthday", "Current Weight", "Shed Code", "Shed Name", "Pool Code", "Pool Phase", "Date", "Reason",
}

var mobilizationReportHeadings = []interface{}{
	"Earring", "Genre", "Race", "Active", "Origin", "Origin Phase", "Destination", "Destination Phase", "Date", "Reason", "Reference Doc",
}

func cuyReportRow(r *models.CuyReport) []interface{} {
	var weight interface{}
	if r.CurrentWeight != nil {
		weight = r.CurrentWeight.InexactFloat64()
	}
	return []interface{}{
		r.Earring, r.Race, string(r.Genre), r.BirthdayDate.Format(exportDateLayout), weight,
		r.ShedCode, r.ShedName, r.PoolCode, r.PoolPhase, r.RecordDate.Format(exportDateLayout), r.RecordReason,
	}
}

func mobilizationReportRow(r *models.MobilizationReport) []interface{} {
	return []interface{}{
		r.CuyEarring, string(r.CuyGenre), r.CuyRace, r.CuyActive, r.OriginCode, r.OriginPhase,
		r.DestinationCode, r.DestinationPhase, r.Date.Format(exportDateLayout), r.Reason, utils.DereferencePtr(r.ReferenceDoc),
	}
}

// workbook writes one heading row followed by rows into a fresh file.
func workbook(headings []interface{}, rows [][]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetRow(exportSheet, "A1", &headings); err != nil {
		f.Close()
		return nil, err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &rows[i]); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeWorkbook(c *gin.Context, filename string, f *excelize.File) {
	defer f.Close()
	c.Header("Content-Type", exportContentType)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

func queryInt(c *gin.Context, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, utils.ErrInvalidInputf("%s must be a number", key)
	}
	return &n, nil
}

// queryDate accepts RFC3339 or a plain date. A plain dateTo covers the whole day.
func queryDate(c *gin.Context, key string, endOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(exportDateLayout, raw)
	if err != nil {
		return nil, utils.ErrInvalidInputf("%s must be a date", key)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func queryString(c *gin.Context, key string) *string {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	return utils.TrimPtr(&raw)
}

func reportFilterFromQuery(c *gin.Context) (models.ReportFilter, error) {
	var (
		filter models.ReportFilter
		err    error
	)
	if filter.ShedId, err = queryInt(c, "idShed"); err != nil {
		return filter, err
	}
	if filter.PoolId, err = queryInt(c, "idPool"); err != nil {
		return filter, err
	}
	if filter.DateFrom, err = queryDate(c, "dateFrom", false); err != nil {
		return filter, err
	}
	if filter.DateTo, err = queryDate(c, "dateTo", true); err != nil {
		return filter, err
	}
	filter.Reason = queryString(c, "reason")
	return filter, nil
}

func mobilizationFilterFromQuery(c *gin.Context) (models.MobilizationFilter, error) {
	var (
		filter models.MobilizationFilter
		err    error
	)
	if filter.CuyId, err = queryInt(c, "idCuy"); err != nil {
		return filter, err
	}
	if filter.OriginId, err = queryInt(c, "from"); err != nil {
		return filter, err
	}
	if filter.DestinationId, err = queryInt(c, "destination"); err != nil {
		return filter, err
	}
	if filter.DateFrom, err = queryDate(c, "dateFrom", false); err != nil {
		return filter, err
	}
	if filter.DateTo, err = queryDate(c, "dateTo", true); err != nil {
		return filter, err
	}
	filter.Reason = queryString(c, "reason")
	return filter, nil
}

func (s *server) exportAccess(c *gin.Context) bool {
	if _, ok := utils.GetUserIdFromContext(c.Request.Context()); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return false
	}
	if err := s.store.CheckReportAccess(c.Request.Context()); err != nil {
		c.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return false
	}
	return true
}

func (s *server) recordExportHandler(kind models.RecordKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.exportAccess(c) {
			return
		}
		filter, err := reportFilterFromQuery(c)
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		ctx := c.Request.Context()
		all := utils.NormalizePage(nil, nil)
		var report *models.CuyReportPagination
		if kind == models.RecordDeath {
			report, err = s.store.Cuys.DeathReport(ctx, filter, all)
		} else {
			report, err = s.store.Cuys.SacaReport(ctx, filter, all)
		}
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		rows := make([][]interface{}, 0, len(report.CuyList))
		for _, r := range report.CuyList {
			rows = append(rows, cuyReportRow(r))
		}
		f, err := workbook(cuyReportHeadings, rows)
		if err != nil {
			config.LogError(s.logger, "exports", "recordExportHandler", string(kind), nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
			return
		}
		writeWorkbook(c, string(kind)+".xlsx", f)
	}
}

func (s *server) mobilizationExportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.exportAccess(c) {
			return
		}
		filter, err := mobilizationFilterFromQuery(c)
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		report, err := s.store.Mobilizations.Reports(c.Request.Context(), filter, utils.NormalizePage(nil, nil))
		if err != nil {
			c.JSON(httpStatus(err), gin.H{"error": err.Error()})
			return
		}
		rows := make([][]interface{}, 0, len(report.MobilizationList))
		for _, r := range report.MobilizationList {
			rows = append(rows, mobilizationReportRow(r))
		}
		f, err := workbook(mobilizationReportHeadings, rows)
		if err != nil {
			config.LogError(s.logger, "exports", "mobilizationExportHandler", "workbook", nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
			return
		}
		writeWorkbook(c, "mobilizations.xlsx", f)
	}
}
