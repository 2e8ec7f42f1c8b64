package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

const (
	defaultServerURL = "http://localhost:8080"
)

func main() {
	var serverURL string
	var outputPath string
	var async bool
	flag.StringVar(&serverURL, "server", defaultServerURL, "Server URL")
	flag.StringVar(&serverURL, "s", defaultServerURL, "Server URL (short)")
	flag.StringVar(&outputPath, "o", "", "Output file for the rendered document")
	flag.BoolVar(&async, "async", false, "Queue the render instead of waiting for it")
	flag.Parse()

	if flag.NArg() == 0 {
		printUsage()
		os.Exit(1)
	}

	args := flag.Args()
	serverURL = strings.TrimSuffix(serverURL, "/")

	var err error
	switch args[0] {
	case "booking", "event-registration", "membership", "render":
		if len(args) < 2 {
			fmt.Fprintf(os.Stderr, "Error: %s requires an input JSON file\n", args[0])
			os.Exit(1)
		}
		err = requestReceipt(serverURL, args[0], args[1], outputPath, async)

	case "job":
		err = runJobCommand(serverURL, args[1:], outputPath)

	case "help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Receipt Engine CLI

Usage:
  receipt-cli [flags] <command>

Flags:
  -s, -server <url>    Server URL (default: %s)
  -o <path>            Output file for the rendered document
  -async               Queue the render and return a job id

Commands:
  booking <input.json>
    Render a receipt for a facility booking

  event-registration <input.json>
    Render a receipt for an event registration

  membership <input.json>
    Render a receipt for a membership application

  render <receipt.json>
    Render pre-assembled receipt data as-is

  job list
    List all render jobs

  job status <id>
    Get status of a specific job

  job fetch <id>
    Download the document for a completed job

  help
    Show help message

Examples:
  receipt-cli booking ./booking.json -o receipt.png
  receipt-cli -async membership ./application.json
  receipt-cli job fetch 1f6a... -o receipt.png
  receipt-cli -s http://localhost:9090 job list

`, defaultServerURL)
}

// requestReceipt posts a transaction payload to the server and writes the
// rendered document, or prints the queued job id in async mode.
func requestReceipt(serverURL, kind, inputPath, outputPath string, async bool) error {
	payload, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	url := fmt.Sprintf("%s/receipts/%s", serverURL, kind)
	if async {
		url += "?async=1"
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, serverError(body))
	}

	if async {
		var result struct {
			JobID         string `json:"job_id"`
			ReceiptNumber string `json:"receipt_number"`
		}
		if err := json.Unmarshal(body, &result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
		fmt.Printf("Receipt number: %s\n", result.ReceiptNumber)
		fmt.Printf("Job ID: %s\n", result.JobID)
		return nil
	}

	return writeDocument(body, resp.Header.Get("X-Receipt-Number"), outputPath)
}

func runJobCommand(serverURL string, args []string, outputPath string) error {
	if len(args) == 0 {
		return fmt.Errorf("job requires a subcommand: list, status or fetch")
	}

	switch args[0] {
	case "list":
		return listJobs(serverURL)

	case "status":
		if len(args) < 2 {
			return fmt.Errorf("job status requires a job id")
		}
		return jobStatus(serverURL, args[1])

	case "fetch":
		if len(args) < 2 {
			return fmt.Errorf("job fetch requires a job id")
		}
		return fetchJobDocument(serverURL, args[1], outputPath)

	default:
		return fmt.Errorf("unknown job subcommand: %s", args[0])
	}
}

func listJobs(serverURL string) error {
	body, err := getJSON(serverURL + "/jobs")
	if err != nil {
		return err
	}

	var result struct {
		Jobs []map[string]interface{} `json:"jobs"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if len(result.Jobs) == 0 {
		fmt.Println("No jobs")
		return nil
	}

	fmt.Println("Jobs:")
	for _, job := range result.Jobs {
		fmt.Printf("  %s: %s (%s)\n", job["id"], job["status"], job["receipt_number"])
	}
	return nil
}

func jobStatus(serverURL, jobID string) error {
	body, err := getJSON(fmt.Sprintf("%s/job/%s", serverURL, jobID))
	if err != nil {
		return err
	}

	var job map[string]interface{}
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	fmt.Printf("Job: %s\n", job["id"])
	fmt.Printf("Receipt: %s\n", job["receipt_number"])
	fmt.Printf("Status: %s\n", job["status"])
	if errMsg, ok := job["error"].(string); ok {
		fmt.Printf("Error: %s\n", errMsg)
	}
	return nil
}

func fetchJobDocument(serverURL, jobID, outputPath string) error {
	resp, err := http.Get(fmt.Sprintf("%s/job/%s/document", serverURL, jobID))
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, serverError(body))
	}

	return writeDocument(body, resp.Header.Get("X-Receipt-Number"), outputPath)
}

func writeDocument(document []byte, receiptNumber, outputPath string) error {
	if outputPath == "" {
		if receiptNumber == "" {
			receiptNumber = "receipt"
		}
		outputPath = receiptNumber + ".png"
	}

	if err := os.WriteFile(outputPath, document, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	fmt.Printf("Saved %s (%d bytes)\n", outputPath, len(document))
	return nil
}

func getJSON(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, serverError(body))
	}

	return body, nil
}

func serverError(body []byte) string {
	var result struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &result); err == nil && result.Error != "" {
		return result.Error
	}
	return strings.TrimSpace(string(body))
}
