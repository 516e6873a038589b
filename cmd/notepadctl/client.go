package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

func newClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(60 * time.Second)
}

func runHealth(api string, out io.Writer) error {
	resp, err := newClient(api).R().Get("/health")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("service unhealthy: status %d", resp.StatusCode())
	}
	fmt.Fprintln(out, resp.String())
	return nil
}

func runNotesList(api, token string, out io.Writer) error {
	resp, err := newClient(api).R().
		SetHeader("Authorization", "Bearer "+token).
		Get("/notes")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("list notes: status %d: %s", resp.StatusCode(), resp.String())
	}

	var notes []struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body(), &notes); err != nil {
		return fmt.Errorf("decode notes: %w", err)
	}
	for _, n := range notes {
		fmt.Fprintf(out, "%s\t[%s]\t%s\n", n.ID, n.Status, n.Title)
	}
	return nil
}

func runChat(api, token, message string, out io.Writer) error {
	resp, err := newClient(api).R().
		SetHeader("Authorization", "Bearer "+token).
		SetFormData(map[string]string{"message": message}).
		Post("/chat")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("chat: status %d: %s", resp.StatusCode(), resp.String())
	}

	var body struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	fmt.Fprintln(out, body.Reply)
	return nil
}
