package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// ----------------------------------------------------------------------------
// Config ---------------------------------------------------------------------
var (
	baseURL = flag.String("url", env("API_BASE_URL", "http://localhost:8080"), "Server base URL")
	nNotes  = flag.Int("notes", envInt("NOTES", 60), "How many notes to create")
	nGoals  = flag.Int("goals", envInt("GOALS", 4), "Goals per category")
	nHabits = flag.Int("habits", envInt("HABITS", 5), "How many habits to create")
	days    = flag.Int("days", envInt("DAYS", 30), "Spread data over the past N days")
)

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return def
}

// ----------------------------------------------------------------------------
// HTTP helpers ---------------------------------------------------------------
func postJSON(path string, body any) (*http.Response, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, *baseURL+path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return http.DefaultClient.Do(req)
}

func must(body io.ReadCloser) []byte {
	defer body.Close()
	data, _ := io.ReadAll(body)
	return data
}

func randomDay() string {
	offset := gofakeit.Number(0, *days-1)
	return time.Now().AddDate(0, 0, -offset).Format("2006-01-02")
}

// ----------------------------------------------------------------------------
// Main -----------------------------------------------------------------------
func main() {
	flag.Parse()
	gofakeit.Seed(time.Now().UnixNano())

	fmt.Printf("Seeding %s (notes=%d goals=%d habits=%d)\n", *baseURL, *nNotes, *nGoals, *nHabits)

	if err := createNotes(*nNotes); err != nil {
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}
	if err := createGoals(*nGoals); err != nil {
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}
	if err := createHabits(*nHabits); err != nil {
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}

	fmt.Println("✔ done")
}

// ----------------------------------------------------------------------------
// Step 1 – notes --------------------------------------------------------------
func createNotes(total int) error {
	categories := []string{"personal", "work", "health", "other"}
	priorities := []string{"high", "medium", "low"}

	for i := 1; i <= total; i++ {
		note := map[string]any{
			"text":     gofakeit.Sentence(gofakeit.Number(3, 8)),
			"date":     randomDay(),
			"category": categories[gofakeit.Number(0, len(categories)-1)],
			"priority": priorities[gofakeit.Number(0, len(priorities)-1)],
		}
		// roughly half the notes get a time slot
		if gofakeit.Bool() {
			note["timeSlot"] = fmt.Sprintf("%02d:%02d", gofakeit.Number(7, 21), gofakeit.Number(0, 3)*15)
		}

		resp, err := postJSON("/api/v1/notes", note)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusCreated {
			return fmt.Errorf("create note %d failed (%d): %s", i, resp.StatusCode, must(resp.Body))
		}

		if i%25 == 0 || i == total {
			fmt.Printf("  … notes %d/%d\n", i, total)
		}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Step 2 – goals --------------------------------------------------------------
func createGoals(perCategory int) error {
	for _, category := range []string{"personal", "professional", "creative"} {
		for i := 1; i <= perCategory; i++ {
			resp, err := postJSON("/api/v1/goals/"+category, map[string]any{
				"text": gofakeit.HackerPhrase(),
			})
			if err != nil {
				return err
			}
			if resp.StatusCode != http.StatusCreated {
				return fmt.Errorf("create %s goal %d failed (%d): %s", category, i, resp.StatusCode, must(resp.Body))
			}
		}
		fmt.Printf("  … goals %s %d\n", category, perCategory)
	}
	return nil
}

// ----------------------------------------------------------------------------
// Step 3 – habits with a completion history -----------------------------------
func createHabits(total int) error {
	for i := 1; i <= total; i++ {
		resp, err := postJSON("/api/v1/habits", map[string]any{
			"name": gofakeit.Verb() + " " + gofakeit.Noun(),
		})
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusCreated {
			return fmt.Errorf("create habit %d failed (%d): %s", i, resp.StatusCode, must(resp.Body))
		}

		// the handler wraps the habit in a {"habit": {...}} envelope
		var created struct {
			Habit struct {
				ID string `json:"id"`
			} `json:"habit"`
		}
		if err := json.Unmarshal(must(resp.Body), &created); err != nil || created.Habit.ID == "" {
			return fmt.Errorf("create habit %d: unexpected response", i)
		}

		// mark random days done so streaks and stats have something to chew on
		for d := 0; d < *days; d++ {
			if !gofakeit.Bool() {
				continue
			}
			day := time.Now().AddDate(0, 0, -d).Format("2006-01-02")
			resp, err := postJSON("/api/v1/habits/"+created.Habit.ID+"/toggle", map[string]any{"date": day})
			if err != nil {
				return err
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("toggle habit %s on %s failed (%d)", created.Habit.ID, day, resp.StatusCode)
			}
			_ = must(resp.Body)
		}
		fmt.Printf("  … habits %d/%d\n", i, total)
	}
	return nil
}
