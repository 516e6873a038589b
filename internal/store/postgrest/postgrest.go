// Package postgrest implements the store against a hosted Supabase
// project's REST interface (PostgREST). Row-level owner scoping is applied
// by filtering every request on user_id; the service never trusts a
// client-supplied owner field.
package postgrest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/notepadhq/notepad-backend/internal/model"
	"github.com/notepadhq/notepad-backend/internal/store"
)

// New constructs a PostgREST-backed store for the given Supabase project.
func New(baseURL, apiKey string, timeout time.Duration) store.Store {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("apikey", apiKey).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &restStore{client: c}
}

type restStore struct{ client *resty.Client }

func (s *restStore) Notes() store.Notes   { return &notes{client: s.client} }
func (s *restStore) Events() store.Events { return &events{client: s.client} }

func (s *restStore) HealthPing(ctx context.Context) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("limit", "1").
		Get("/rest/v1/notes")
	if err != nil {
		return fmt.Errorf("postgrest ping: %w", err)
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("postgrest ping: status %d", resp.StatusCode())
	}
	return nil
}

func statusErr(resp *resty.Response) error {
	return fmt.Errorf("postgrest status %d: %s", resp.StatusCode(), resp.String())
}

// decodeRow unwraps PostgREST's single-element representation array.
func decodeRow[T any](body []byte) (*T, error) {
	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("postgrest response: %w", err)
	}
	if len(rows) == 0 {
		return nil, model.ErrNotFound
	}
	return &rows[0], nil
}

// --- Notes ---

type notes struct{ client *resty.Client }

func (n *notes) Create(ctx context.Context, m *model.Note) (*model.Note, error) {
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(map[string]any{
			"title":   m.Title,
			"content": m.Content,
			"status":  m.Status,
			"user_id": m.UserID,
		}).
		Post("/rest/v1/notes")
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, statusErr(resp)
	}
	return decodeRow[model.Note](resp.Body())
}

func (n *notes) List(ctx context.Context, req model.ListNotesRequest) ([]*model.Note, error) {
	r := n.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("user_id", "eq."+req.OwnerID)
	if req.Limit > 0 {
		r.SetQueryParam("limit", strconv.Itoa(req.Limit))
	}
	resp, err := r.Get("/rest/v1/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, statusErr(resp)
	}
	var out []*model.Note
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("postgrest response: %w", err)
	}
	return out, nil
}

func (n *notes) Update(ctx context.Context, ownerID, noteID string, patch *model.NoteUpdate) (*model.Note, error) {
	body := map[string]any{}
	if patch.Title != nil {
		body["title"] = *patch.Title
	}
	if patch.Content != nil {
		body["content"] = *patch.Content
	}
	if patch.Status != nil {
		body["status"] = *patch.Status
	}
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+noteID).
		SetQueryParam("user_id", "eq."+ownerID).
		SetBody(body).
		Patch("/rest/v1/notes")
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, statusErr(resp)
	}
	return decodeRow[model.Note](resp.Body())
}

func (n *notes) Delete(ctx context.Context, ownerID, noteID string) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+noteID).
		SetQueryParam("user_id", "eq."+ownerID).
		Delete("/rest/v1/notes")
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return statusErr(resp)
	}
	if _, err := decodeRow[model.Note](resp.Body()); err != nil {
		return err
	}
	return nil
}

// --- Events ---

type events struct{ client *resty.Client }

func (e *events) Create(ctx context.Context, m *model.Event) (*model.Event, error) {
	resp, err := e.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(map[string]any{
			"title":       m.Title,
			"description": m.Description,
			"start_time":  m.StartTime.Format(time.RFC3339),
			"end_time":    m.EndTime.Format(time.RFC3339),
			"user_id":     m.UserID,
		}).
		Post("/rest/v1/events")
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, statusErr(resp)
	}
	return decodeRow[model.Event](resp.Body())
}

func (e *events) List(ctx context.Context, req model.ListEventsRequest) ([]*model.Event, error) {
	r := e.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("user_id", "eq."+req.OwnerID)
	if req.OrderByStartTime {
		r.SetQueryParam("order", "start_time.asc")
	}
	if req.Limit > 0 {
		r.SetQueryParam("limit", strconv.Itoa(req.Limit))
	}
	resp, err := r.Get("/rest/v1/events")
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, statusErr(resp)
	}
	var out []*model.Event
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("postgrest response: %w", err)
	}
	return out, nil
}

func (e *events) Delete(ctx context.Context, ownerID, eventID string) error {
	resp, err := e.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+eventID).
		SetQueryParam("user_id", "eq."+ownerID).
		Delete("/rest/v1/events")
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return statusErr(resp)
	}
	if _, err := decodeRow[model.Event](resp.Body()); err != nil {
		return err
	}
	return nil
}
