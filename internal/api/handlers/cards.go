package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/filamvp/card-tracker/internal/store"
	"github.com/filamvp/card-tracker/pkg/parse"
	domain "github.com/filamvp/card-tracker/pkg/types"
)

// CardsHandler handles card CRUD and status endpoints.
type CardsHandler struct {
	store store.Store
	now   func() time.Time
}

// NewCardsHandler creates a new CardsHandler.
func NewCardsHandler(s store.Store) *CardsHandler {
	return &CardsHandler{store: s, now: time.Now}
}

// --- Input/Output types ---

// ListCardsInput is the input for listing cards with optional filters.
type ListCardsInput struct {
	Status  string `query:"status"   doc:"Filter by status"           enum:"New,Available,Listed,Inactive,Sold,"`
	Kind    string `query:"kind"     doc:"Filter by kind"             enum:"Single,Lot,"`
	Team    string `query:"team"     doc:"Filter by canonical team name"`
	Set     string `query:"set"      doc:"Filter by set name"`
	Search  string `query:"q"        doc:"Case-insensitive title substring"`
	Limit   int    `query:"limit"    doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset  int    `query:"offset"   doc:"Pagination offset"              minimum:"0"`
	OrderBy string `query:"order_by" doc:"Sort field"                     enum:"created_at,price,title,"`
}

// ListCardsOutput is the response for listing cards.
type ListCardsOutput struct {
	Body struct {
		Cards  []domain.Card `json:"cards"`
		Total  int           `json:"total"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
}

// CardIDInput identifies a card by path parameter.
type CardIDInput struct {
	ID string `path:"id" doc:"Card UUID"`
}

// CardOutput is the response carrying a single card.
type CardOutput struct {
	Body domain.Card
}

// CreateCardInput is the input for creating a card.
type CreateCardInput struct {
	Body domain.Card
}

// UpdateCardInput is the input for replacing a card.
type UpdateCardInput struct {
	ID   string `path:"id" doc:"Card UUID"`
	Body domain.Card
}

// ListTeamsOutput is the grouped official team list for pickers.
type ListTeamsOutput struct {
	Body struct {
		Teams []parse.TeamGroup `json:"teams"`
	}
}

// --- Handlers ---

// ListCards returns cards with optional filters and pagination, newest
// first by default.
func (h *CardsHandler) ListCards(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error) {
	q := &store.CardQuery{
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Status != "" {
		q.Status = &input.Status
	}
	if input.Kind != "" {
		q.Kind = &input.Kind
	}
	if input.Team != "" {
		q.Team = &input.Team
	}
	if input.Set != "" {
		q.Set = &input.Set
	}
	if input.Search != "" {
		q.TitleSearch = &input.Search
	}
	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	cards, total, err := h.store.ListCards(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("card query failed: " + err.Error())
	}

	if cards == nil {
		cards = []domain.Card{}
	}

	resp := &ListCardsOutput{}
	resp.Body.Cards = cards
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// GetCard returns a single card by ID.
func (h *CardsHandler) GetCard(ctx context.Context, input *CardIDInput) (*CardOutput, error) {
	card, err := h.store.GetCard(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("card not found")
	}
	return &CardOutput{Body: *card}, nil
}

// CreateCard creates one card. The title is the identity: creating a
// card whose normalized title already exists returns 409.
func (h *CardsHandler) CreateCard(ctx context.Context, input *CreateCardInput) (*CardOutput, error) {
	card := input.Body
	if card.Title == "" {
		return nil, huma.Error422UnprocessableEntity("title is required")
	}

	if card.ID == "" {
		card.ID = uuid.NewString()
	}
	if card.Kind == "" {
		card.Kind = domain.KindSingle
	}
	if card.Status == "" {
		card.Status = domain.StatusAvailable
	}
	if card.CreatedAt.IsZero() {
		card.CreatedAt = h.now().UTC()
	}
	card.Team = parse.NormalizeTeamName(card.Team)

	accepted, err := h.store.UpsertCards(ctx, []domain.Card{card})
	if err != nil {
		return nil, huma.Error500InternalServerError("creating card: " + err.Error())
	}
	if len(accepted) == 0 {
		return nil, huma.Error409Conflict("a card with this title already exists")
	}

	return &CardOutput{Body: accepted[0]}, nil
}

// UpdateCard replaces a card's fields by ID.
func (h *CardsHandler) UpdateCard(ctx context.Context, input *UpdateCardInput) (*CardOutput, error) {
	card := input.Body
	card.ID = input.ID
	if card.Title == "" {
		return nil, huma.Error422UnprocessableEntity("title is required")
	}
	card.Team = parse.NormalizeTeamName(card.Team)

	if err := h.store.UpdateCard(ctx, &card); err != nil {
		return nil, huma.Error404NotFound("card not found")
	}
	return &CardOutput{Body: card}, nil
}

// DeleteCard deletes a card by ID.
func (h *CardsHandler) DeleteCard(ctx context.Context, input *CardIDInput) (*struct{}, error) {
	if err := h.store.DeleteCard(ctx, input.ID); err != nil {
		return nil, huma.Error500InternalServerError("deleting card: " + err.Error())
	}
	return &struct{}{}, nil
}

// NextStatus advances a card one step in the selling cycle
// (New -> Available -> Listed -> Sold -> Inactive -> Available).
func (h *CardsHandler) NextStatus(ctx context.Context, input *CardIDInput) (*CardOutput, error) {
	card, err := h.store.GetCard(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("card not found")
	}

	card.Status = domain.NextStatus(card.Status)
	if err := h.store.UpdateCard(ctx, card); err != nil {
		return nil, huma.Error500InternalServerError("updating card status: " + err.Error())
	}
	return &CardOutput{Body: *card}, nil
}

// ListTeams returns the official team list grouped by league.
func (*CardsHandler) ListTeams(_ context.Context, _ *struct{}) (*ListTeamsOutput, error) {
	resp := &ListTeamsOutput{}
	resp.Body.Teams = parse.OfficialTeams()
	return resp, nil
}

// RegisterCardRoutes registers card endpoints with the Huma API.
func RegisterCardRoutes(api huma.API, h *CardsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-cards",
		Method:      http.MethodGet,
		Path:        "/api/v1/cards",
		Summary:     "List cards",
		Description: "Returns cards with optional filters for status, kind, team, set, title search, and pagination.",
		Tags:        []string{"cards"},
	}, h.ListCards)

	huma.Register(api, huma.Operation{
		OperationID: "get-card",
		Method:      http.MethodGet,
		Path:        "/api/v1/cards/{id}",
		Summary:     "Get a card by ID",
		Tags:        []string{"cards"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetCard)

	huma.Register(api, huma.Operation{
		OperationID:   "create-card",
		Method:        http.MethodPost,
		Path:          "/api/v1/cards",
		Summary:       "Create a card",
		Description:   "Creates one card. The normalized title must be unique across the inventory.",
		Tags:          []string{"cards"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity, http.StatusConflict},
	}, h.CreateCard)

	huma.Register(api, huma.Operation{
		OperationID: "update-card",
		Method:      http.MethodPut,
		Path:        "/api/v1/cards/{id}",
		Summary:     "Update a card",
		Tags:        []string{"cards"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.UpdateCard)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-card",
		Method:        http.MethodDelete,
		Path:          "/api/v1/cards/{id}",
		Summary:       "Delete a card",
		Tags:          []string{"cards"},
		DefaultStatus: http.StatusNoContent,
	}, h.DeleteCard)

	huma.Register(api, huma.Operation{
		OperationID: "next-card-status",
		Method:      http.MethodPost,
		Path:        "/api/v1/cards/{id}/next-status",
		Summary:     "Advance a card to its next selling status",
		Tags:        []string{"cards"},
		Errors:      []int{http.StatusNotFound},
	}, h.NextStatus)

	huma.Register(api, huma.Operation{
		OperationID: "list-teams",
		Method:      http.MethodGet,
		Path:        "/api/v1/teams",
		Summary:     "List official teams grouped by league",
		Tags:        []string{"cards"},
	}, h.ListTeams)
}
