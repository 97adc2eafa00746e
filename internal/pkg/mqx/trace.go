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

package mqx

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "internal/pkg/mqx/tracing"

// TraceMq 只给发送消息打点，消费者保持原样
type TraceMq struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMq(q mq.MQ) *TraceMq {
	return &TraceMq{MQ: q, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t *TraceMq) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &TraceProducer{Producer: p, topic: topic, tracer: t.tracer}, nil
}

type TraceProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (t *TraceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	return t.produce(ctx, "mq.produce", m, func(ctx context.Context) (*mq.ProducerResult, error) {
		return t.Producer.Produce(ctx, m)
	})
}

func (t *TraceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	return t.produce(ctx, "mq.produce_with_partition", m, func(ctx context.Context) (*mq.ProducerResult, error) {
		return t.Producer.ProduceWithPartition(ctx, m, partition)
	})
}

func (t *TraceProducer) produce(ctx context.Context, name string, m *mq.Message,
	fn func(ctx context.Context) (*mq.ProducerResult, error)) (*mq.ProducerResult, error) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	span.SetAttributes(
		attribute.String("messaging.operation", "produce"),
		attribute.String("messaging.topic", t.topic),
	)
	if m != nil {
		span.SetAttributes(attribute.Int("messaging.message_length", len(m.Value)))
	}
	res, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return res, nil
}
