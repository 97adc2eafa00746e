package testioc

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecodeclub/jobmate/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db         *egorm.Component
	configOnce sync.Once
)

func InitDB() *egorm.Component {
	if db != nil {
		return db
	}
	loadConfig()
	err := ioc.WaitForDBSetup(context.Background(), econf.GetString("mysql.dsn"))
	if err != nil {
		panic(err)
	}
	db = egorm.Load("mysql").Build()
	return db
}

// loadConfig 测试可能在任意一层目录下运行，往上找到 config/local.yaml 为止
func loadConfig() {
	configOnce.Do(func() {
		path, err := findLocalConfig()
		if err != nil {
			panic(err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			panic(err)
		}
		err = econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
		if err != nil {
			panic(err)
		}
	})
}

func findLocalConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, "config", "local.yaml")
		if _, err = os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("没有找到 config/local.yaml")
		}
		dir = parent
	}
}
