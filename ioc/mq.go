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
	"fmt"
	"time"

	"github.com/ecodeclub/jobmate/internal/pkg/mqx"
	"github.com/ecodeclub/jobmate/internal/qa"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/gotomicro/ego/core/econf"
)

// 配置里面没有写分区数的时候使用
const defaultPartitions = 3

type topicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

func InitMQ() mq.MQ {
	type Config struct {
		Network   string        `yaml:"network"`
		Addresses []string      `yaml:"addresses"`
		Topics    []topicConfig `yaml:"topics"`
	}

	var cfg Config
	err := econf.UnmarshalKey("kafka", &cfg)
	if err != nil {
		panic(err)
	}

	q, err := kafka.NewMQ(cfg.Network, cfg.Addresses)
	if err != nil {
		panic(err)
	}

	ctx, cancelFunc := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelFunc()
	for _, t := range mergeTopics(cfg.Topics) {
		if e := q.CreateTopic(ctx, t.Name, t.Partitions); e != nil {
			panic(fmt.Sprintf("创建Topic失败: %s : Topic = %s, Partitions = %d", e.Error(), t.Name, t.Partitions))
		}
	}
	return mqx.NewTraceMq(q)
}

// mergeTopics 质量分模块用到的 topic 一定会创建，配置只能调整分区数
func mergeTopics(configured []topicConfig) []topicConfig {
	res := []topicConfig{
		{Name: qa.QualityTopic, Partitions: defaultPartitions},
		{Name: qa.ProfileStrengthTopic, Partitions: defaultPartitions},
	}
	idx := make(map[string]int, len(res))
	for i, t := range res {
		idx[t.Name] = i
	}
	for _, t := range configured {
		if t.Partitions <= 0 {
			t.Partitions = defaultPartitions
		}
		if i, ok := idx[t.Name]; ok {
			res[i].Partitions = t.Partitions
			continue
		}
		idx[t.Name] = len(res)
		res = append(res, t)
	}
	return res
}
