package publishers

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Adda-Baaj/spacetraders-go/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type fakeSQSClient struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-123")}, nil
}

func TestAWSSQSSenderSendSuccess(t *testing.T) {
	client := &fakeSQSClient{}
	sender := &awsSQSSender{
		queueURL: "https://example.com/queue",
		client:   client,
		log:      noopLogger{},
	}

	err := sender.Send(context.Background(), NewEvent(domain.Snapshot{
		SourceID: "source-1",
		Kind:     domain.KindAgent,
		Payload:  map[string]any{"credits": 100},
	}))
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://example.com/queue" {
		t.Fatalf("QueueUrl = %s", got)
	}
	attr, ok := client.input.MessageAttributes["source_id"]
	if !ok || attr.StringValue == nil || aws.ToString(attr.StringValue) != "source-1" {
		t.Fatalf("source_id attribute missing or wrong: %#v", attr)
	}
	if attr.DataType == nil || aws.ToString(attr.DataType) != "String" {
		t.Fatalf("DataType should be String, got %#v", attr.DataType)
	}
	if _, ok := client.input.MessageAttributes["subject"]; ok {
		t.Fatalf("empty subject attribute should be dropped")
	}
	if client.input.MessageBody == nil || !strings.Contains(aws.ToString(client.input.MessageBody), `"source_id":"source-1"`) {
		t.Fatalf("MessageBody missing source_id: %s", aws.ToString(client.input.MessageBody))
	}
}

func TestAWSSQSSenderSendError(t *testing.T) {
	client := &fakeSQSClient{err: errors.New("boom")}
	sender := &awsSQSSender{
		queueURL: "https://example.com/queue",
		client:   client,
		log:      noopLogger{},
	}

	err := sender.Send(context.Background(), NewEvent(domain.Snapshot{
		SourceID: "source-1",
		Kind:     domain.KindAgent,
		Payload:  map[string]any{"credits": 100},
	}))
	if err == nil {
		t.Fatalf("expected error from Send")
	}
}

func TestAWSSQSSenderSetsFIFOIdentifiers(t *testing.T) {
	client := &fakeSQSClient{}
	sender := &awsSQSSender{queueURL: "https://example.com/snapshots.fifo", client: client, log: noopLogger{}}

	err := sender.Send(context.Background(), NewEvent(domain.Snapshot{SourceID: "fleet", Kind: domain.KindFleet, Digest: "d1"}))
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if got := aws.ToString(client.input.MessageGroupId); got != "fleet" {
		t.Fatalf("MessageGroupId = %q", got)
	}
	if got := aws.ToString(client.input.MessageDeduplicationId); got != "fleet:d1" {
		t.Fatalf("MessageDeduplicationId = %q", got)
	}

	plain := &fakeSQSClient{}
	sender = &awsSQSSender{queueURL: "https://example.com/snapshots", client: plain, log: noopLogger{}}
	if err := sender.Send(context.Background(), NewEvent(domain.Snapshot{SourceID: "fleet", Digest: "d1"})); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if plain.input.MessageGroupId != nil || plain.input.MessageDeduplicationId != nil {
		t.Fatalf("standard queues must not carry FIFO identifiers")
	}
}

func TestAWSSQSSenderKeepsSourcesWithEqualDigestsApart(t *testing.T) {
	collected := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	sender := &awsSQSSender{queueURL: "https://example.com/snapshots.fifo", log: noopLogger{}}

	dedup := func(snap domain.Snapshot) string {
		t.Helper()
		client := &fakeSQSClient{}
		sender.client = client
		if err := sender.Send(context.Background(), NewEvent(snap)); err != nil {
			t.Fatalf("Send returned error: %v", err)
		}
		return aws.ToString(client.input.MessageDeduplicationId)
	}

	contracts := dedup(domain.Snapshot{SourceID: "contracts", Kind: domain.KindContracts, Digest: "same", CollectedAt: collected})
	fleet := dedup(domain.Snapshot{SourceID: "fleet", Kind: domain.KindFleet, Digest: "same", CollectedAt: collected})
	if contracts == fleet {
		t.Fatalf("sources sharing a digest got the same dedup id %q", contracts)
	}

	again := dedup(domain.Snapshot{SourceID: "fleet", Kind: domain.KindFleet, Digest: "same", CollectedAt: collected})
	if again != fleet {
		t.Fatalf("resending an event changed its dedup id: %q vs %q", again, fleet)
	}
	later := dedup(domain.Snapshot{SourceID: "fleet", Kind: domain.KindFleet, Digest: "same", CollectedAt: collected.Add(time.Minute)})
	if later == fleet {
		t.Fatalf("a later snapshot with an earlier digest reused dedup id %q", later)
	}
}

func TestFIFODedupIDFitsLimit(t *testing.T) {
	evt := Event{SourceID: strings.Repeat("s", 200), Digest: "d", CollectedAt: time.Unix(1, 0)}
	group, dedup := fifoIDs(evt)
	if aws.ToString(group) != evt.SourceID {
		t.Fatalf("group = %q", aws.ToString(group))
	}
	if n := len(aws.ToString(dedup)); n == 0 || n > maxDedupID {
		t.Fatalf("dedup id length %d outside (0, %d]", n, maxDedupID)
	}
	if _, dedup := fifoIDs(Event{SourceID: "x"}); dedup != nil {
		t.Fatalf("expected no dedup id without a digest")
	}
}
