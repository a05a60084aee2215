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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsBuilder_Build(t *testing.T) {
	reg := prometheus.NewRegistry()
	builder := NewMetricsBuilder(reg)
	server := gin.New()
	server.Use(builder.Build("admin"))
	server.GET("/offers/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	testCases := []struct {
		name      string
		path      string
		labels    []string
		wantCount float64
	}{
		{
			name:      "按路由模板统计",
			path:      "/offers/1",
			labels:    []string{"admin", http.MethodGet, "/offers/:id", "200"},
			wantCount: 1,
		},
		{
			name:      "同一个路由模板累加",
			path:      "/offers/2",
			labels:    []string{"admin", http.MethodGet, "/offers/:id", "200"},
			wantCount: 2,
		},
		{
			name:      "未匹配的路由",
			path:      "/not-found",
			labels:    []string{"admin", http.MethodGet, "unknown", "404"},
			wantCount: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCount, testutil.ToFloat64(builder.counterVec.WithLabelValues(tc.labels...)))
		})
	}
}
