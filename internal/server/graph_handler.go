package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bwgraph/internal/chart"
	"bwgraph/internal/dao"
	"bwgraph/internal/metrics"
	"bwgraph/internal/traffic"
	"bwgraph/internal/vnstat"
)

type graphRequest struct {
	query   vnstat.Query
	stacked bool
}

// parseGraphRequest reads ts, nr and stack. Unknown ts values fall back to
// daily, nr defaults per granularity and is capped at MaxPeriods, and stack
// enables stacking by its mere presence.
func (s *Server) parseGraphRequest(c *gin.Context) (graphRequest, error) {
	var req dao.GraphRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return graphRequest{}, err
	}
	g, err := traffic.ParseGranularity(req.TS)
	if err != nil {
		g = traffic.GranularityDay
	}

	count := req.NR
	if count == 0 {
		count = g.DefaultCount()
	}
	if count > s.conf.MaxPeriods {
		count = s.conf.MaxPeriods
	}

	_, stacked := c.GetQuery("stack")
	return graphRequest{
		query:   vnstat.Query{Granularity: g, Count: count},
		stacked: stacked,
	}, nil
}

func (s *Server) fetch(ctx context.Context, q vnstat.Query) (*traffic.Document, error) {
	start := time.Now()
	doc, err := s.source.Fetch(ctx, q)
	metrics.ObserveFetch(s.source.Name(), err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("fetch traffic document: %w", err)
	}
	return doc, nil
}

// buildCharts runs the pipeline and mounts one Chart.js chart per
// remaining interface.
func (s *Server) buildCharts(doc *traffic.Document, req graphRequest) ([]dao.Chart, error) {
	items := s.builder.Run(doc, req.query.Granularity, req.stacked)
	board := chart.NewBoard(s.conf.Theme.Light, s.logger)
	if err := board.Mount(chart.JSBuilder{}, items, req.stacked); err != nil {
		return nil, err
	}
	metrics.AddChartsBuilt(string(req.query.Granularity), len(items))

	handles := board.Handles()
	charts := make([]dao.Chart, 0, len(items))
	for i, item := range items {
		charts = append(charts, dao.Chart{
			ID:       item.ID,
			Title:    item.Title,
			Labels:   item.Series.Labels,
			Datasets: item.Series.Datasets,
			Config:   handles[i].(*chart.JSChart).Config(),
		})
	}
	return charts, nil
}

func (s *Server) themes() dao.Themes {
	return dao.Themes{
		Light: s.conf.Theme.Light,
		Dark:  s.conf.Theme.Dark,
		Print: chart.PrintTheme,
	}
}

// handleDataJSON raw traffic document
// @Summary Get traffic document
// @Description Returns the vnstat JSON document for the requested granularity and period count
// @Tags traffic
// @Produce json
// @Param ts query string false "granularity, d or h" default(d)
// @Param nr query int false "number of periods"
// @Success 200 {object} traffic.Document
// @Failure 400 {object} ErrorResponse "invalid query"
// @Failure 502 {object} ErrorResponse "vnstat unavailable"
// @Router /data.json [get]
func (s *Server) handleDataJSON(c *gin.Context) {
	req, err := s.parseGraphRequest(c)
	if err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	doc, err := s.fetch(c.Request.Context(), req.query)
	if err != nil {
		s.writeError(c, http.StatusBadGateway, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// handleCharts built chart series
// @Summary Get charts
// @Description Runs the traffic pipeline and returns labels, datasets and a Chart.js configuration per interface
// @Tags traffic
// @Produce json
// @Param ts query string false "granularity, d or h" default(d)
// @Param nr query int false "number of periods"
// @Param stack query string false "stack rx and tx, enabled when present"
// @Success 200 {object} dao.ChartsResponse
// @Failure 400 {object} ErrorResponse "invalid query"
// @Failure 502 {object} ErrorResponse "vnstat unavailable"
// @Router /api/v1/charts [get]
func (s *Server) handleCharts(c *gin.Context) {
	req, err := s.parseGraphRequest(c)
	if err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return
	}
	doc, err := s.fetch(c.Request.Context(), req.query)
	if err != nil {
		s.writeError(c, http.StatusBadGateway, err)
		return
	}
	charts, err := s.buildCharts(doc, req)
	if err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dao.ChartsResponse{
		Granularity: req.query.Granularity.Short(),
		Count:       req.query.Count,
		Stacked:     req.stacked,
		Charts:      charts,
	})
}

// handleThemes colour themes
// @Summary Get themes
// @Tags traffic
// @Produce json
// @Success 200 {object} dao.Themes
// @Router /api/v1/themes [get]
func (s *Server) handleThemes(c *gin.Context) {
	c.JSON(http.StatusOK, s.themes())
}
