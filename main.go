package main

import (
	"context"
	"time"

	"github.com/ecodeclub/jobmate/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/server/egovernor"
	"go.opentelemetry.io/otel/sdk/trace"
)

func main() {
	var tp *trace.TracerProvider
	// 服务都停下来之后再把剩下的 span 发出去
	egoApp := ego.New(
		ego.WithStopTimeout(10*time.Second),
		ego.WithAfterStopClean(func() error {
			if tp == nil {
				return nil
			}
			return tp.Shutdown(context.Background())
		}))
	// ego.New 之后配置才可用
	tp = ioc.InitZipkinTracer()
	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}
	err = egoApp.
		Serve(
			egovernor.Load("server.governor").Build(),
			app.Web,
			(*egin.Component)(app.Admin)).
		Cron(app.Crons...).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("App运行错误", elog.FieldErr(err))
	}
}
