package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/innoalumni/portalkit/internal/httpc"
	"github.com/spf13/cobra"
)

const (
	defaultWaitTimeout  = 60 * time.Second
	defaultWaitInterval = 2 * time.Second
)

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Poll the backend until it answers with the expected status",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadConfig()
		if err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("path")
		method, _ := cmd.Flags().GetString("method")
		expected, _ := cmd.Flags().GetInt("status")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		interval, _ := cmd.Flags().GetDuration("interval")

		url := doc.BaseURL() + path
		hcfg := &httpc.Httpc{TlsConfig: doc.TLSConfig()}
		return doWait(cmd.Context(), hcfg, waitParams{
			url:      url,
			method:   strings.ToUpper(strings.TrimSpace(method)),
			expected: expected,
			timeout:  timeout,
			interval: interval,
		})
	},
}

func init() {
	waitCmd.Flags().String("path", "/", "path probed on the backend")
	waitCmd.Flags().String("method", "GET", "probe method (GET or HEAD)")
	waitCmd.Flags().Int("status", 200, "status code treated as ready")
	waitCmd.Flags().Duration("timeout", defaultWaitTimeout, "total time to wait")
	waitCmd.Flags().Duration("interval", defaultWaitInterval, "delay between probes")
}

type waitParams struct {
	url      string
	method   string
	expected int
	timeout  time.Duration
	interval time.Duration
}

func probe(ctx context.Context, hcfg *httpc.Httpc, method, url string) (int, error) {
	req := hcfg.New().R().SetContext(ctx)
	if method == http.MethodHead {
		resp, err := req.Head(url)
		if resp != nil {
			return resp.StatusCode(), err
		}
		return 0, err
	}
	resp, err := req.Get(url)
	if resp != nil {
		return resp.StatusCode(), err
	}
	return 0, err
}

// doWait polls an HTTP endpoint until it returns the expected status or the
// timeout elapses.
func doWait(ctx context.Context, hcfg *httpc.Httpc, params waitParams) error {
	if params.timeout <= 0 {
		params.timeout = defaultWaitTimeout
	}
	if params.interval <= 0 {
		params.interval = defaultWaitInterval
	}

	deadline := time.Now().Add(params.timeout)
	var lastStatus int

	for {
		status, err := probe(ctx, hcfg, params.method, params.url)
		if err == nil && status == params.expected {
			return nil
		}

		lastStatus = status
		if time.Now().After(deadline) {
			return fmt.Errorf("wait: timeout waiting for %s to return %d (last=%d)",
				params.url, params.expected, lastStatus)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(params.interval):
		}
	}
}
