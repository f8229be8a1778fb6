package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledger-cli",
		Short: "Ledger CLI tool",
		Long:  `A command line interface for interacting with the Ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountCmd())
	rootCmd.AddCommand(transferCmd())
	rootCmd.AddCommand(ledgerCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var initialBalance string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/accounts/", map[string]any{
				"initial_balance": initialBalance,
			})
		},
	}
	createCmd.Flags().StringVar(&initialBalance, "balance", "0", "Initial account balance")

	getCmd := &cobra.Command{
		Use:   "get <account-id>",
		Short: "Get an account by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0])
		},
	}

	var limit, offset int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(fmt.Sprintf("/api/v1/accounts/?limit=%d&offset=%d", limit, offset))
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of accounts to return")
	listCmd.Flags().IntVar(&offset, "offset", 0, "Number of accounts to skip")

	entriesCmd := &cobra.Command{
		Use:   "entries <account-id>",
		Short: "List ledger entries for an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0] + "/entries")
		},
	}

	cmd.AddCommand(createCmd, getCmd, listCmd, entriesCmd)

	return cmd
}

func transferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer operations",
	}

	var transferID, fromAccount, toAccount, amount string
	applyCmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a transfer between two accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/transfers/", transferPayload(transferID, fromAccount, toAccount, amount))
		},
	}
	applyCmd.Flags().StringVar(&transferID, "id", "", "Client-supplied transfer ID")
	applyCmd.Flags().StringVar(&fromAccount, "from", "", "Source account ID")
	applyCmd.Flags().StringVar(&toAccount, "to", "", "Destination account ID")
	applyCmd.Flags().StringVar(&amount, "amount", "", "Transfer amount")
	_ = applyCmd.MarkFlagRequired("id")
	_ = applyCmd.MarkFlagRequired("from")
	_ = applyCmd.MarkFlagRequired("to")
	_ = applyCmd.MarkFlagRequired("amount")

	outcomeCmd := &cobra.Command{
		Use:   "outcome <transfer-id>",
		Short: "Get the recorded outcome for a transfer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/transfers/" + args[0])
		},
	}

	entriesCmd := &cobra.Command{
		Use:   "entries <transfer-id>",
		Short: "List ledger entries posted by a transfer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/transfers/" + args[0] + "/entries")
		},
	}

	cmd.AddCommand(applyCmd, outcomeCmd, entriesCmd)

	return cmd
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkConsistency()
		},
	}

	cmd.AddCommand(consistencyCmd)

	return cmd
}

func transferPayload(transferID, fromAccount, toAccount, amount string) map[string]any {
	return map[string]any{
		"transfer_id":     transferID,
		"from_account_id": fromAccount,
		"to_account_id":   toAccount,
		"amount":          amount,
	}
}

func checkConsistency() error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/ledger/consistency")
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("consistency check FAILED (Status: %d)\nResponse: %s", resp.StatusCode, string(body))
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	fmt.Printf("Consistency check PASSED\n")
	if consistent, ok := result["consistent"].(bool); ok {
		fmt.Printf("Consistent: %v\n", consistent)
	}

	return nil
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func postJSON(path string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed (Status: %d)\nResponse: %s", resp.StatusCode, truncate(string(body), 1024))
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		fmt.Println(string(body))
		return nil
	}

	printJSON(decoded)

	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%+v\n", v)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
