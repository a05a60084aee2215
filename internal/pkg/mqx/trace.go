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

// TraceMQ 给收发消息打点
type TraceMQ struct {
	mq.MQ
	system string
	tracer trace.Tracer
}

// NewTraceMQ system 是消息队列的实现，例如 kafka、memory
func NewTraceMQ(q mq.MQ, system string) *TraceMQ {
	return &TraceMQ{MQ: q, system: system, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t *TraceMQ) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &TraceProducer{Producer: p, topic: topic, mq: t}, nil
}

func (t *TraceMQ) Consumer(topic, group string) (mq.Consumer, error) {
	c, err := t.MQ.Consumer(topic, group)
	if err != nil {
		return nil, err
	}
	return &TraceConsumer{Consumer: c, topic: topic, group: group, mq: t}, nil
}

func (t *TraceMQ) start(ctx context.Context, name string, kind trace.SpanKind, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("messaging.system", t.system))
	return t.tracer.Start(ctx, name, trace.WithSpanKind(kind), trace.WithAttributes(attrs...))
}

type TraceProducer struct {
	mq.Producer
	topic string
	mq    *TraceMQ
}

func (t *TraceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.mq.start(ctx, t.topic+" publish", trace.SpanKindProducer, messageAttributes(t.topic, m)...)
	defer span.End()
	res, err := t.Producer.Produce(ctx, m)
	endSpan(span, err)
	return res, err
}

func (t *TraceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	attrs := append(messageAttributes(t.topic, m), attribute.Int("messaging.destination.partition.id", partition))
	ctx, span := t.mq.start(ctx, t.topic+" publish", trace.SpanKindProducer, attrs...)
	defer span.End()
	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	endSpan(span, err)
	return res, err
}

type TraceConsumer struct {
	mq.Consumer
	topic string
	group string
	mq    *TraceMQ
}

// Consume 只记录拿到消息这一步，业务处理的耗时由调用方自己记录
func (t *TraceConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	msg, err := t.Consumer.Consume(ctx)
	if err != nil {
		return msg, err
	}
	_, span := t.mq.start(ctx, t.topic+" receive", trace.SpanKindConsumer,
		append(messageAttributes(t.topic, msg), attribute.String("messaging.consumer.group.name", t.group))...)
	span.End()
	return msg, nil
}

func messageAttributes(topic string, m *mq.Message) []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String("messaging.destination.name", topic)}
	if m != nil {
		attrs = append(attrs, attribute.Int("messaging.message.body.size", len(m.Value)))
	}
	return attrs
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
