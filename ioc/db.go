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
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/jobmate/internal/pkg/database"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
)

func InitDB() *egorm.Component {
	type Config struct {
		DSN string `yaml:"dsn"`
	}
	var cfg Config
	err := econf.UnmarshalKey("mysql", &cfg)
	if err != nil {
		panic(err)
	}
	err = WaitForDBSetup(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}
	db := egorm.Load("mysql").Build()
	err = db.Use(database.NewGormTracingPlugin())
	if err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup 指数退避地 ping 数据库，MySQL 容器启动比较慢
func WaitForDBSetup(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("打开数据库失败: %w", err)
	}
	defer sqlDB.Close()

	const maxInterval = 10 * time.Second
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		return err
	}
	const timeout = 5 * time.Second
	for {
		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		err = sqlDB.PingContext(pingCtx)
		cancel()
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("等待数据库启动超过重试次数: %w", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(next):
		}
	}
}
