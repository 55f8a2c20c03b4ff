package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"
)

// authResponse is the body of register and login
type authResponse struct {
	ID    uint64 `json:"id"`
	Token string `json:"token"`
}

// expenseRequest is the body of POST /expenses
type expenseRequest struct {
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Date     string `json:"date,omitempty"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is one kind of request a worker can send
type Scenario struct {
	Name   string
	Weight int
	Build  func(baseURL string) (*http.Request, error)
}

var categories = []string{"Food", "Transport", "Entertainment", "Shopping", "Bills", "Health", "Education", "Other"}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	users := flag.Int("u", 3, "Number of throwaway users to register and spread load across")
	baseURL := flag.String("url", "http://localhost:5000/api", "Base URL for the API, including the base path")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	tokens, err := registerUsers(client, *baseURL, *users)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to prepare users: %v\n", err)
		os.Exit(1)
	}

	scenarios := []Scenario{
		{Name: "Create", Weight: 5, Build: createExpense},
		{Name: "List", Weight: 3, Build: getRequest("/expenses")},
		{Name: "ListByMonth", Weight: 1, Build: getRequest("/expenses?month=" + time.Now().Format("2006-01"))},
		{Name: "Summary", Weight: 1, Build: getRequest("/expenses/summary")},
	}

	fmt.Printf("Load testing %s with %d users\n", *baseURL, len(tokens))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, tokens, scenarios, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			stats.Lock.Unlock()
			fmt.Printf("Progress: %d/%d requests completed\n", completed, *totalRequests)
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

// registerUsers creates n users with random emails and returns their tokens
func registerUsers(client *http.Client, baseURL string, n int) ([]string, error) {
	if n < 1 {
		n = 1
	}
	run := time.Now().UnixNano()

	tokens := make([]string, 0, n)
	for i := 0; i < n; i++ {
		body, _ := json.Marshal(map[string]string{
			"name":     fmt.Sprintf("Load User %d", i),
			"email":    fmt.Sprintf("load-%d-%d@example.com", run, i),
			"password": "load-test-password",
		})
		resp, err := client.Post(baseURL+"/auth/register", "application/json", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}

		var auth authResponse
		err = json.NewDecoder(resp.Body).Decode(&auth)
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			return nil, fmt.Errorf("register returned HTTP %d", resp.StatusCode)
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, auth.Token)
	}
	return tokens, nil
}

func createExpense(baseURL string) (*http.Request, error) {
	daysAgo := rand.Intn(60)
	body, err := json.Marshal(expenseRequest{
		Title:    fmt.Sprintf("Load expense %d", rand.Intn(1000000)),
		Amount:   fmt.Sprintf("%d.%02d", 1+rand.Intn(200), rand.Intn(100)),
		Category: categories[rand.Intn(len(categories))],
		Date:     time.Now().AddDate(0, 0, -daysAgo).Format("2006-01-02"),
	})
	if err != nil {
		return nil, err
	}
	return http.NewRequest(http.MethodPost, baseURL+"/expenses", bytes.NewReader(body))
}

func getRequest(path string) func(string) (*http.Request, error) {
	return func(baseURL string) (*http.Request, error) {
		return http.NewRequest(http.MethodGet, baseURL+path, nil)
	}
}

// pickScenario draws a scenario according to the weights
func pickScenario(scenarios []Scenario) Scenario {
	total := 0
	for _, s := range scenarios {
		total += s.Weight
	}
	n := rand.Intn(total)
	for _, s := range scenarios {
		if n < s.Weight {
			return s
		}
		n -= s.Weight
	}
	return scenarios[len(scenarios)-1]
}

func worker(client *http.Client, baseURL string, delayMs int, tokens []string,
	scenarios []Scenario, jobs <-chan int, results chan<- TestResult) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := pickScenario(scenarios)
		req, err := scenario.Build(baseURL)
		if err != nil {
			results <- TestResult{Scenario: scenario.Name, Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+tokens[rand.Intn(len(tokens))])

		startTime := time.Now()
		resp, err := client.Do(req)
		result := TestResult{Scenario: scenario.Name, ResponseTime: time.Since(startTime)}

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.ScenarioStats[result.Scenario]++
	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	if result.ResponseTime < s.MinResponseTime {
		s.MinResponseTime = result.ResponseTime
	}
	if result.ResponseTime > s.MaxResponseTime {
		s.MaxResponseTime = result.ResponseTime
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Successful RPS:      %.2f\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
}
