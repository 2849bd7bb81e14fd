package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NATS stores keys in a JetStream key-value bucket.
type NATS struct {
	conn *nats.Conn
	kv   jetstream.KeyValue
}

// OpenNATS connects to url and binds to bucket, creating it when missing.
func OpenNATS(ctx context.Context, url, bucket string) (*NATS, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("kv: nats connect: %w", err)
	}
	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("kv: jetstream: %w", err)
	}
	kv, err := js.KeyValue(ctx, bucket)
	if errors.Is(err, jetstream.ErrBucketNotFound) {
		kv, err = js.CreateKeyValue(ctx, jetstream.KeyValueConfig{Bucket: bucket, History: 1})
	}
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("kv: bucket %s: %w", bucket, err)
	}
	return &NATS{conn: nc, kv: kv}, nil
}

func (n *NATS) Get(ctx context.Context, key string) (string, error) {
	entry, err := n.kv.Get(ctx, key)
	if errors.Is(err, jetstream.ErrKeyNotFound) || errors.Is(err, jetstream.ErrKeyDeleted) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("kv: nats get %s: %w", key, err)
	}
	return string(entry.Value()), nil
}

func (n *NATS) Set(ctx context.Context, key, value string) error {
	if _, err := n.kv.PutString(ctx, key, value); err != nil {
		return fmt.Errorf("kv: nats put %s: %w", key, err)
	}
	return nil
}

func (n *NATS) Remove(ctx context.Context, key string) error {
	err := n.kv.Delete(ctx, key)
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("kv: nats delete %s: %w", key, err)
	}
	return nil
}

func (n *NATS) Close() error {
	n.conn.Close()
	return nil
}
