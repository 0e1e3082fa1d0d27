package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"bwgraph/internal/dao"
	"bwgraph/pkg/log"
)

type pagePayload struct {
	Charts []dao.Chart `json:"charts"`
	Themes dao.Themes  `json:"themes"`
}

type pageData struct {
	Granularity string
	Count       int
	Stacked     bool
	Error       string
	Charts      []dao.Chart
	Payload     pagePayload
	ChartJSURL  string
}

func (s *Server) handleIndex(c *gin.Context) {
	data := pageData{
		Granularity: "d",
		Count:       7,
		ChartJSURL:  defaultChartJSURL,
		Payload:     pagePayload{Charts: []dao.Chart{}, Themes: s.themes()},
	}
	status := http.StatusOK

	req, err := s.parseGraphRequest(c)
	if err != nil {
		status = http.StatusBadRequest
		data.Error = err.Error()
		s.renderIndex(c, status, data)
		return
	}
	data.Granularity = req.query.Granularity.Short()
	data.Count = req.query.Count
	data.Stacked = req.stacked

	doc, err := s.fetch(c.Request.Context(), req.query)
	if err != nil {
		log.GetLogger(c.Request.Context()).WithError(err).Error("render index")
		status = http.StatusBadGateway
		data.Error = "Traffic data is unavailable: " + err.Error()
		s.renderIndex(c, status, data)
		return
	}

	charts, err := s.buildCharts(doc, req)
	if err != nil {
		status = http.StatusInternalServerError
		data.Error = err.Error()
	} else {
		data.Charts = charts
		data.Payload.Charts = charts
	}
	s.renderIndex(c, status, data)
}

func (s *Server) renderIndex(c *gin.Context, status int, data pageData) {
	var buf bytes.Buffer
	if err := s.index.Execute(&buf, data); err != nil {
		s.writeError(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
