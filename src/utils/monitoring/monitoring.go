package monitoring

import (
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/monitoring/report"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Monitor stores and serves counters of one feature
type Monitor interface {
	GetReport() *report.Report
	GetPrometheusCollector() prometheus.Collector
	IsOK() bool
	OnGet(c *gin.Context)
}
