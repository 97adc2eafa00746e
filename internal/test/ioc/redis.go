package testioc

import (
	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

var cache ecache.Cache

// InitCache 和线上一样带上 jobmate: 前缀，测试按照完整的 key 清理
func InitCache() ecache.Cache {
	if cache != nil {
		return cache
	}
	loadConfig()
	cmd := redis.NewClient(&redis.Options{
		Addr: econf.GetString("redis.addr"),
	})
	cache = &ecache.NamespaceCache{
		C:         eredis.NewCache(cmd),
		Namespace: "jobmate:",
	}
	return cache
}
