package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/innoalumni/portalkit/internal/config"
	"github.com/innoalumni/portalkit/internal/history"
	"github.com/innoalumni/portalkit/internal/request"
	"github.com/spf13/cobra"
)

var requestCmd = &cobra.Command{
	Use:   "request <path>",
	Short: "Send a single request to the backend and print the JSON response",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadConfig()
		if err != nil {
			return err
		}

		method, _ := cmd.Flags().GetString("method")
		body, _ := cmd.Flags().GetString("body")
		rawHeaders, _ := cmd.Flags().GetStringArray("header")
		noCT, _ := cmd.Flags().GetBool("no-content-type")

		headers, err := parseHeaders(rawHeaders)
		if err != nil {
			return err
		}

		sender, err := doc.Sender()
		if err != nil {
			return err
		}

		opts := request.Options{
			Method:                 method,
			Headers:                headers,
			OmitDefaultContentType: noCT,
		}
		if body != "" {
			opts.Body = body
		}

		path := args[0]
		res, err := sender.Send(context.Background(), path, opts)
		recordCall(doc, method, sender.BaseURL()+path, res, err)

		if err != nil {
			return err
		}
		cmd.Println(string(res.Body))
		return nil
	},
}

func init() {
	requestCmd.Flags().String("method", "POST", "HTTP method")
	requestCmd.Flags().String("body", "", "request body (sent verbatim)")
	requestCmd.Flags().StringArray("header", nil, "request header in key=value form (repeatable)")
	requestCmd.Flags().Bool("no-content-type", false, "do not inject the default JSON content type")
}

func parseHeaders(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	hdrs := make(map[string]string, len(raw))
	for _, h := range raw {
		k, v, ok := strings.Cut(h, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid header %q, want key=value", h)
		}
		hdrs[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return hdrs, nil
}

// recordCall appends the call to the history store when enabled. History is
// best-effort: storage problems never fail the command.
func recordCall(doc *config.ConfigDoc, method, url string, res *request.Result, callErr error) {
	if doc.History.Disabled {
		return
	}
	path := doc.History.Path
	if path == "" {
		path = history.DefaultFileName
	}

	st, err := history.Open(path)
	if err != nil {
		return
	}
	defer func() { _ = st.Close() }()

	status := 0
	if res != nil {
		status = res.StatusCode
	}
	detail := ""
	var apiErr *request.APIError
	if errors.As(callErr, &apiErr) {
		detail = apiErr.Detail
	}
	if method == "" {
		method = "POST"
	}
	_ = st.Record(strings.ToUpper(method), url, status, detail)
}
