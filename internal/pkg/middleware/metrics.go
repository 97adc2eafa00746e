// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 统计每个接口的响应时间和调用次数
type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

// NewMetricsBuilder 同一个 registerer 上只能调用一次，重复注册会 panic
func NewMetricsBuilder(namespace string, reg prometheus.Registerer) *MetricsBuilder {
	labels := []string{"method", "path", "status_code"}
	factory := promauto.With(reg)
	return &MetricsBuilder{
		summaryVec: factory.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, labels),
		counterVec: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, labels),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		// 没有匹配到路由的时候用原始路径
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		lvs := []string{ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
		b.summaryVec.WithLabelValues(lvs...).Observe(time.Since(start).Seconds())
		b.counterVec.WithLabelValues(lvs...).Inc()
	}
}
