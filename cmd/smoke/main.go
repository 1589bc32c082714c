package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"
)

// End to end smoke against a running studenthub-api: register an admin,
// log in, create a society, and read it back anonymously.
func main() {
	base := os.Getenv("HUB_API_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	client := &http.Client{Timeout: 5 * time.Second}
	suffix := rand.Int63()
	email := fmt.Sprintf("smoke-%d@example.edu", suffix)

	post(client, base+"/api/auth/register", "", map[string]any{
		"email":     email,
		"full_name": "Smoke Admin",
		"password":  "smoke-password",
		"role":      "ADMIN",
	}, http.StatusCreated)

	var login struct {
		Token string `json:"token"`
	}
	body := post(client, base+"/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "smoke-password",
	}, http.StatusOK)
	if err := json.Unmarshal(body, &login); err != nil || login.Token == "" {
		log.Fatalf("login response unusable: %v %s", err, body)
	}

	name := fmt.Sprintf("Smoke Society %d", suffix)
	var society struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	body = post(client, base+"/api/societies", login.Token, map[string]any{
		"name": name,
	}, http.StatusCreated)
	if err := json.Unmarshal(body, &society); err != nil || society.ID == 0 {
		log.Fatalf("society response unusable: %v %s", err, body)
	}

	resp, err := client.Get(fmt.Sprintf("%s/api/societies/%d", base, society.ID))
	if err != nil {
		log.Fatalf("get society: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("get society: status %d", resp.StatusCode)
	}
	var fetched struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		log.Fatalf("decode society: %v", err)
	}
	if fetched.Name != name {
		log.Fatalf("society round trip mismatch: %q != %q", fetched.Name, name)
	}

	fmt.Printf("✅ studenthub-api smoke test passed: society=%d account=%s\n", society.ID, email)
}

func post(client *http.Client, url, token string, payload map[string]any, wantStatus int) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("marshal %s: %v", url, err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		log.Fatalf("request %s: %v", url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("post %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != wantStatus {
		log.Fatalf("post %s: status %d body %s", url, resp.StatusCode, body)
	}
	return body
}
