package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(publishCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var publishCmd = &cobra.Command{
	Use:   "publish <venueName>",
	Short: "Publish a synthetic match-created event for a venue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/publish/match-created?venueName=" + url.QueryEscape(args[0])
		return performPostRequest(endpoint)
	},
}

func performGetRequest(endpoint string) error {
	resp, err := http.Get(host + endpoint)
	if err != nil {
		return fmt.Errorf("failed to perform request to %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	return printResponse(resp)
}

func performPostRequest(endpoint string) error {
	resp, err := http.Post(host+endpoint, "application/json", nil)
	if err != nil {
		return fmt.Errorf("failed to perform request to %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	fmt.Printf("Status: %s\n%s\n", resp.Status, string(body))
	return nil
}
