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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// StrengthSaver 保存简历完整度
type StrengthSaver interface {
	SaveStrength(ctx context.Context, uid int64, strength float64) error
}

type ProfileStrengthConsumer struct {
	consumer mq.Consumer
	saver    StrengthSaver
	logger   *elog.Component
}

func NewProfileStrengthConsumer(saver StrengthSaver, q mq.MQ) (*ProfileStrengthConsumer, error) {
	const groupID = "qa_expertise"
	consumer, err := q.Consumer(ProfileStrengthTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &ProfileStrengthConsumer{
		consumer: consumer,
		saver:    saver,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *ProfileStrengthConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt ProfileStrengthEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if evt.Uid <= 0 {
		return fmt.Errorf("非法的用户 id %d", evt.Uid)
	}
	err = c.saver.SaveStrength(ctx, evt.Uid, evt.Strength)
	if err != nil {
		c.logger.Error("保存简历完整度失败", elog.Any("event", evt))
	}
	return err
}

func (c *ProfileStrengthConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("同步简历完整度失败", elog.FieldErr(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (c *ProfileStrengthConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
