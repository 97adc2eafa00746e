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

package ioc

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobmate/internal/pkg/middleware"
	"github.com/ecodeclub/jobmate/internal/qa"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

type AdminServer *egin.Component

// InitAdminServer 管理后台，目前只有质量分排查
func InitAdminServer(qaAdminHdl *qa.AdminHandler) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(corsMiddleware())
	res.Use(middleware.NewMetricsBuilder("jobmate_admin", prometheus.DefaultRegisterer).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(AdminPermission())
	qaAdminHdl.PrivateRoutes(res.Engine)
	return res
}

func AdminPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		xctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(xctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusInternalServerError)
			elog.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		if sess.Claims().Get("creator").StringOrDefault("") != "true" {
			ctx.AbortWithStatus(http.StatusForbidden)
			elog.Error("非法访问 admin 接口，未设置权限", elog.Int64("uid", sess.Claims().Uid))
			return
		}
	}
}
