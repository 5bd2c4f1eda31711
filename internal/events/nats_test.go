package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natstest "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runNATS starts an in-process NATS server on a random port.
func runNATS(t *testing.T) string {
	t.Helper()
	opts := natstest.DefaultTestOptions
	opts.Port = -1
	s := natstest.RunServer(&opts)
	t.Cleanup(s.Shutdown)
	return s.ClientURL()
}

func subscribe(t *testing.T, url, subject string) chan *nats.Msg {
	t.Helper()
	nc, err := nats.Connect(url)
	require.NoError(t, err)
	t.Cleanup(nc.Close)

	msgs := make(chan *nats.Msg, 4)
	_, err = nc.ChanSubscribe(subject, msgs)
	require.NoError(t, err)
	require.NoError(t, nc.Flush())
	return msgs
}

func TestNATSPublisher_PublishTransactionPosted(t *testing.T) {
	url := runNATS(t)
	msgs := subscribe(t, url, "fintrack.>")

	p, err := NewNATSPublisher(url, "fintrack")
	require.NoError(t, err)

	event := &TransactionPosted{
		TransactionID: "tx-1",
		OwnerUserID:   "alice",
		WalletID:      "w-1",
		GroupID:       "g-1",
		Type:          "EXPENSE",
		Amount:        decimal.RequireFromString("90"),
		WalletBalance: decimal.RequireFromString("410"),
		Debtors: []DebtorShare{
			{UserID: "bob", ShareAmount: decimal.NewFromInt(45)},
			{UserID: "carol", ShareAmount: decimal.NewFromInt(45)},
		},
		PostedAt: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.PublishTransactionPosted(context.Background(), event))
	require.NoError(t, p.Close(), "close drains pending messages")

	select {
	case msg := <-msgs:
		assert.Equal(t, "fintrack.transaction.posted", msg.Subject)

		var got TransactionPosted
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		assert.Equal(t, "tx-1", got.TransactionID)
		assert.Equal(t, "g-1", got.GroupID)
		assert.True(t, got.Amount.Equal(decimal.NewFromInt(90)))
		assert.True(t, got.WalletBalance.Equal(decimal.NewFromInt(410)))
		require.Len(t, got.Debtors, 2)
		assert.Equal(t, "carol", got.Debtors[1].UserID)
		assert.True(t, got.PostedAt.Equal(event.PostedAt))
	case <-time.After(5 * time.Second):
		t.Fatal("event not received")
	}
}

func TestNATSPublisher_EmptyPrefix(t *testing.T) {
	url := runNATS(t)
	msgs := subscribe(t, url, SubjectTransactionPosted)

	p, err := NewNATSPublisher(url, "")
	require.NoError(t, err)
	require.NoError(t, p.PublishTransactionPosted(context.Background(), &TransactionPosted{TransactionID: "tx-2"}))
	require.NoError(t, p.Close())

	select {
	case msg := <-msgs:
		assert.Equal(t, SubjectTransactionPosted, msg.Subject)
	case <-time.After(5 * time.Second):
		t.Fatal("event not received")
	}
}

func TestNATSPublisher_Errors(t *testing.T) {
	url := runNATS(t)

	p, err := NewNATSPublisher(url, "fintrack")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.PublishTransactionPosted(ctx, &TransactionPosted{}), context.Canceled)

	require.NoError(t, p.Close())
	assert.Error(t, p.PublishTransactionPosted(context.Background(), &TransactionPosted{}), "closed connection rejects publishes")
}

func TestNewNATSPublisher_Unreachable(t *testing.T) {
	_, err := NewNATSPublisher("nats://127.0.0.1:1", "fintrack")
	assert.ErrorContains(t, err, "failed to connect to NATS")
}
