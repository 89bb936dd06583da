package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"
)

func getBaseURL() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return fmt.Sprintf("http://localhost:%s/api", port)
}

func requireServer(t *testing.T) {
	t.Helper()
	client := http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(getBaseURL() + "/stores")
	if err != nil {
		t.Skipf("service not running at %s: %v", getBaseURL(), err)
	}
	resp.Body.Close()
}

type couponListing struct {
	Coupons []struct {
		ID      string `json:"_id"`
		Title   string `json:"title"`
		VotesUp int    `json:"votesUp"`
	} `json:"coupons"`
}

func fetchCoupons(t *testing.T) couponListing {
	t.Helper()
	resp, err := http.Get(getBaseURL() + "/coupons")
	if err != nil {
		t.Fatalf("Failed to list coupons: %v", err)
	}
	defer resp.Body.Close()

	var listing couponListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		t.Fatalf("Failed to decode coupon listing: %v", err)
	}
	return listing
}

func TestConcurrency(t *testing.T) {
	requireServer(t)

	t.Run("VoteStampede", func(t *testing.T) {
		resp, err := http.Get(getBaseURL() + "/seed")
		if err != nil || resp.StatusCode != http.StatusOK {
			t.Fatalf("Failed to seed database: %v", err)
		}
		resp.Body.Close()

		before := fetchCoupons(t)
		if len(before.Coupons) == 0 {
			t.Fatal("Expected seeded coupons, got none")
		}
		target := before.Coupons[0]

		requests := 50
		var wg sync.WaitGroup
		wg.Add(requests)

		for i := 0; i < requests; i++ {
			go func() {
				defer wg.Done()
				voteBody, _ := json.Marshal(map[string]string{"direction": "up"})
				resp, err := http.Post(getBaseURL()+"/coupons/"+target.ID+"/vote", "application/json", bytes.NewBuffer(voteBody))
				if err == nil {
					resp.Body.Close()
				}
			}()
		}
		wg.Wait()

		// Every vote must land; the counter only ever grows.
		after := fetchCoupons(t)
		for _, c := range after.Coupons {
			if c.ID != target.ID {
				continue
			}
			got := c.VotesUp - target.VotesUp
			if got != requests {
				t.Errorf("Expected %d new up votes, got %d", requests, got)
			}
			return
		}
		t.Errorf("Coupon %s missing from listing after voting", target.ID)
	})

	t.Run("RepeatedSeedIsIdempotent", func(t *testing.T) {
		requests := 10
		var wg sync.WaitGroup
		wg.Add(requests)

		for i := 0; i < requests; i++ {
			go func() {
				defer wg.Done()
				resp, err := http.Get(getBaseURL() + "/seed")
				if err == nil {
					resp.Body.Close()
				}
			}()
		}
		wg.Wait()

		resp, err := http.Get(getBaseURL() + "/stores")
		if err != nil {
			t.Fatalf("Failed to list stores: %v", err)
		}
		defer resp.Body.Close()

		var listing struct {
			Count int `json:"count"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
			t.Fatalf("Failed to decode store listing: %v", err)
		}
		if listing.Count != 3 {
			t.Errorf("Expected 3 seeded stores, got %d", listing.Count)
		}
	})
}
