package redis

import (
	"context"
	"testing"
	"time"

	"github.com/MrSnakeDoc/tapbook/internal/logger"
)

func TestBackoff(t *testing.T) {
	bo := &backoff{wait: time.Second, max: 5 * time.Second}
	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 5 * time.Second, 5 * time.Second}
	for i, w := range want {
		if got := bo.next(); got != w {
			t.Errorf("next() #%d = %v, want %v", i, got, w)
		}
	}
}

func TestConnectOptionsValidate(t *testing.T) {
	valid := ConnectOptions{
		Addr:           "localhost:6379",
		ConnectTimeout: time.Second,
		RetryInterval:  time.Millisecond,
		MaxWait:        time.Millisecond,
		PingTimeout:    time.Millisecond,
	}

	tests := []struct {
		name    string
		edit    func(o *ConnectOptions)
		wantErr bool
	}{
		{"valid", func(*ConnectOptions) {}, false},
		{"missing addr", func(o *ConnectOptions) { o.Addr = "" }, true},
		{"zero timeout", func(o *ConnectOptions) { o.ConnectTimeout = 0 }, true},
		{"zero retry", func(o *ConnectOptions) { o.RetryInterval = 0 }, true},
		{"negative threshold", func(o *ConnectOptions) { o.WarnThreshold = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid
			tt.edit(&o)
			if err := o.validate(); (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConnectGivesUpOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Connect(ctx, ConnectOptions{
		Addr:           "127.0.0.1:1",
		DialTimeout:    10 * time.Millisecond,
		ConnectTimeout: time.Second,
		RetryInterval:  10 * time.Millisecond,
		MaxWait:        10 * time.Millisecond,
		PingTimeout:    10 * time.Millisecond,
	}, logger.NewNop())
	if err == nil {
		t.Fatal("Connect() succeeded against a cancelled context")
	}
}
