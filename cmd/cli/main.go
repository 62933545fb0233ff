package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "inventory-cli",
		Short: "Inventory ledger CLI tool",
		Long:  `A command line interface for interacting with the inventory movement API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the inventory API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		recordCmd("in", "Inbound", "Record an inbound movement"),
		recordCmd("out", "Outbound", "Record an outbound movement"),
		listCmd(),
		getCmd(),
		transitionCmd("undo", "Mark a movement as undone"),
		transitionCmd("redo", "Restore an undone movement"),
		deleteCmd(),
		stockCmd(),
		sumCmd(),
		importCmd(),
		exportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func recordCmd(use, direction, short string) *cobra.Command {
	var (
		product, model, unit  string
		notes, buyer, seller  string
		quantity              int64
		price, effectiveDate  string
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"type":           direction,
				"product_name":   product,
				"model_number":   model,
				"unit":           unit,
				"quantity":       quantity,
				"unit_price":     price,
				"effective_date": effectiveDate,
				"notes":          notes,
				"buyer":          buyer,
				"seller":         seller,
			}

			resp, err := post("/api/v1/movements", body)
			if err != nil {
				return err
			}
			printJSON(resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&product, "product", "", "Product name")
	cmd.Flags().StringVar(&model, "model", "", "Model number")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit of measure")
	cmd.Flags().Int64Var(&quantity, "qty", 0, "Quantity (positive)")
	cmd.Flags().StringVar(&price, "price", "0", "Unit price")
	cmd.Flags().StringVar(&effectiveDate, "date", time.Now().Format("2006-01-02"), "Effective date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&buyer, "buyer", "", "Buyer")
	cmd.Flags().StringVar(&seller, "seller", "", "Seller")

	return cmd
}

func listCmd() *cobra.Command {
	var (
		product, model, buyer, seller string
		movementType, from, to        string
		includeUndone                 bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List movements matching a filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			for key, value := range map[string]string{
				"product": product,
				"model":   model,
				"buyer":   buyer,
				"seller":  seller,
				"type":    movementType,
				"from":    from,
				"to":      to,
			} {
				if value != "" {
					q.Set(key, value)
				}
			}
			if includeUndone {
				q.Set("include_undone", "true")
			}

			path := "/api/v1/movements"
			if encoded := q.Encode(); encoded != "" {
				path += "?" + encoded
			}

			resp, err := get(path)
			if err != nil {
				return err
			}
			printJSON(resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&product, "product", "", "Product name substring")
	cmd.Flags().StringVar(&model, "model", "", "Model number substring")
	cmd.Flags().StringVar(&buyer, "buyer", "", "Buyer substring")
	cmd.Flags().StringVar(&seller, "seller", "", "Seller substring")
	cmd.Flags().StringVar(&movementType, "type", "", "Inbound or Outbound")
	cmd.Flags().StringVar(&from, "from", "", "Effective date lower bound (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Effective date upper bound (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&includeUndone, "include-undone", false, "Include undone movements")

	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a movement by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := get("/api/v1/movements/" + args[0])
			if err != nil {
				return err
			}
			printJSON(resp)
			return nil
		},
	}
}

func transitionCmd(use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := post(fmt.Sprintf("/api/v1/movements/%s/%s", args[0], use), nil)
			if err != nil {
				return err
			}
			printJSON(resp)
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Permanently delete a movement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := del("/api/v1/movements/" + args[0]); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}
}

func stockCmd() *cobra.Command {
	var product, model string

	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Show current stock",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/stock/summary"
			if product != "" {
				q := url.Values{}
				q.Set("product", product)
				q.Set("model", model)
				path = "/api/v1/stock/current?" + q.Encode()
			}

			resp, err := get(path)
			if err != nil {
				return err
			}
			printJSON(resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&product, "product", "", "Narrow to one product")
	cmd.Flags().StringVar(&model, "model", "", "Narrow to one model")

	return cmd
}

func sumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum <id>...",
		Short: "Total the active movements among the selected ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]json.Number, len(args))
			for i, a := range args {
				ids[i] = json.Number(a)
			}

			resp, err := post("/api/v1/movements/sum", map[string]any{"ids": ids})
			if err != nil {
				return err
			}
			printJSON(resp)
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import movements from a csv or xlsx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			format := formatForFile(args[0])
			resp, err := postRaw("/api/v1/movements/import?format="+format, data)
			if err != nil {
				return err
			}
			printJSON(resp)
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var ids string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export movements to a csv or xlsx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/movements/export?format=" + formatForFile(args[0])
			if ids != "" {
				path += "&ids=" + ids
			}

			data, err := getRaw(path)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return err
			}

			fmt.Printf("exported %d bytes to %s\n", len(data), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&ids, "ids", "", "Comma-separated ids to export (default: all)")

	return cmd
}

// formatForFile picks the wire format from the file extension.
func formatForFile(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return "xlsx"
	}
	return "csv"
}

func get(path string) (any, error) {
	return decodeResponse(do(http.MethodGet, path, nil, ""))
}

func getRaw(path string) ([]byte, error) {
	resp, err := do(http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	return body, nil
}

func post(path string, body any) (any, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	return decodeResponse(do(http.MethodPost, path, payload, "application/json"))
}

func postRaw(path string, payload []byte) (any, error) {
	return decodeResponse(do(http.MethodPost, path, payload, "application/octet-stream"))
}

func del(path string) error {
	resp, err := do(http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	return nil
}

func do(method, path string, payload []byte, contentType string) (*http.Response, error) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return client.Do(req)
}

func decodeResponse(resp *http.Response, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
