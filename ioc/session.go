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
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/ginx/session/cookie"
	"github.com/ecodeclub/ginx/session/header"
	"github.com/ecodeclub/ginx/session/mixin"
	redis2 "github.com/ecodeclub/ginx/session/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

const (
	defaultSessionHours = 24
	defaultCookieName   = "jm_ssid"
)

type sessionConfig struct {
	SessionEncryptedKey string `yaml:"sessionEncryptedKey"`
	// 登录态保持的小时数
	ExpirationHours int `yaml:"expirationHours"`
	Cookie          struct {
		Name     string `yaml:"name"`
		Domain   string `yaml:"domain"`
		Insecure bool   `yaml:"insecure"`
	} `yaml:"cookie"`
}

func (c sessionConfig) expiration() time.Duration {
	if c.ExpirationHours <= 0 {
		return defaultSessionHours * time.Hour
	}
	return time.Duration(c.ExpirationHours) * time.Hour
}

func (c sessionConfig) cookieName() string {
	if c.Cookie.Name == "" {
		return defaultCookieName
	}
	return c.Cookie.Name
}

// InitSession 请求头和 cookie 都可以携带 token，session 数据放在 redis
func InitSession(cmd redis.Cmdable) session.Provider {
	var cfg sessionConfig
	err := econf.UnmarshalKey("session", &cfg)
	if err != nil {
		panic(err)
	}
	expiration := cfg.expiration()
	sp := redis2.NewSessionProvider(cmd, cfg.SessionEncryptedKey, expiration)
	cookieC := &cookie.TokenCarrier{
		MaxAge:   int(expiration.Seconds()),
		Name:     cfg.cookieName(),
		Secure:   !cfg.Cookie.Insecure,
		HttpOnly: true,
		Domain:   cfg.Cookie.Domain,
	}
	sp.TokenCarrier = mixin.NewTokenCarrier(header.NewTokenCarrier(), cookieC)
	return sp
}
