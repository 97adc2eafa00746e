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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMQ(t *testing.T) mq.MQ {
	q := memory.NewMQ()
	for _, topic := range []string{QualityTopic, ProfileStrengthTopic} {
		require.NoError(t, q.CreateTopic(context.Background(), topic, 1))
	}
	return q
}

func TestQualityEventProducer_Produce(t *testing.T) {
	q := newTestMQ(t)
	consumer, err := q.Consumer(QualityTopic, "test_quality")
	require.NoError(t, err)

	producer, err := NewQualityEventProducer(q)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	evt := QualityEvent{
		Aid:        11,
		Qid:        1,
		Uid:        2001,
		AQS:        71,
		Label:      "PRO",
		Trigger:    "REACTION",
		ComputedAt: 1700000000000,
	}
	require.NoError(t, producer.Produce(ctx, evt))

	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	var got QualityEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, evt, got)
}

type fakeSaver struct {
	uid      int64
	strength float64
	err      error
}

func (f *fakeSaver) SaveStrength(ctx context.Context, uid int64, strength float64) error {
	f.uid = uid
	f.strength = strength
	return f.err
}

func TestProfileStrengthConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name         string
		msg          []byte
		saveErr      error
		wantErr      bool
		wantUid      int64
		wantStrength float64
	}{
		{
			name:         "保存成功",
			msg:          []byte(`{"uid":2001,"strength":72.5}`),
			wantUid:      2001,
			wantStrength: 72.5,
		},
		{
			name:    "消息格式不对",
			msg:     []byte(`not json`),
			wantErr: true,
		},
		{
			name:    "非法用户",
			msg:     []byte(`{"uid":0,"strength":30}`),
			wantErr: true,
		},
		{
			name:         "保存失败",
			msg:          []byte(`{"uid":2002,"strength":10}`),
			saveErr:      errors.New("mock db error"),
			wantErr:      true,
			wantUid:      2002,
			wantStrength: 10,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := newTestMQ(t)
			saver := &fakeSaver{err: tc.saveErr}
			c, err := NewProfileStrengthConsumer(saver, q)
			require.NoError(t, err)
			defer func() {
				_ = c.Stop(context.Background())
			}()

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			p, err := q.Producer(ProfileStrengthTopic)
			require.NoError(t, err)
			_, err = p.Produce(ctx, &mq.Message{Value: tc.msg})
			require.NoError(t, err)

			err = c.Consume(ctx)
			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.wantUid, saver.uid)
			assert.Equal(t, tc.wantStrength, saver.strength)
		})
	}
}
