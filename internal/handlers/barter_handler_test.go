package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "agrolink/internal/errors"
	"agrolink/internal/models"
	"agrolink/internal/pagination"
)

// --- mock services ---

type mockBarterService struct {
	proposeBarterFn        func(proposerID, receiverID, offeredCropID, requestedCropID uint, offeredQty, requestedQty float64, note string) (*models.BarterOffer, error)
	listUserBarterOffersFn func(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.BarterOffer], error)
	respondToBarterFn      func(receiverID, offerID uint, accept bool) (*models.BarterOffer, error)
}

func (m *mockBarterService) ProposeBarter(proposerID, receiverID, offeredCropID, requestedCropID uint, offeredQty, requestedQty float64, note string) (*models.BarterOffer, error) {
	if m.proposeBarterFn != nil {
		return m.proposeBarterFn(proposerID, receiverID, offeredCropID, requestedCropID, offeredQty, requestedQty, note)
	}
	return &models.BarterOffer{}, nil
}

func (m *mockBarterService) ListUserBarterOffers(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.BarterOffer], error) {
	if m.listUserBarterOffersFn != nil {
		return m.listUserBarterOffersFn(userID, page)
	}
	return &pagination.PageResponse[models.BarterOffer]{}, nil
}

func (m *mockBarterService) RespondToBarter(receiverID, offerID uint, accept bool) (*models.BarterOffer, error) {
	if m.respondToBarterFn != nil {
		return m.respondToBarterFn(receiverID, offerID, accept)
	}
	return &models.BarterOffer{}, nil
}

func setupBarterRouter(handler *BarterHandler) *gin.Engine {
	r := gin.New()
	r.POST("/barter-offers", injectUserID(1), handler.ProposeBarter)
	r.GET("/barter-offers", injectUserID(1), handler.ListBarterOffers)
	r.POST("/barter-offers/:id/respond", injectUserID(1), handler.RespondToBarter)
	return r
}

// --- tests ---

func TestBarterHandler_ProposeBarter(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		barterSvc := &mockBarterService{
			proposeBarterFn: func(proposerID, receiverID, offeredCropID, requestedCropID uint, offeredQty, requestedQty float64, note string) (*models.BarterOffer, error) {
				if proposerID != 1 {
					t.Errorf("expected proposer 1, got %d", proposerID)
				}
				return &models.BarterOffer{
					Base:                models.Base{ID: 3},
					ProposerID:          proposerID,
					ReceiverID:          receiverID,
					OfferedCropID:       offeredCropID,
					OfferedQuantityKg:   offeredQty,
					RequestedCropID:     requestedCropID,
					RequestedQuantityKg: requestedQty,
					Note:                note,
					Status:              models.BarterStatusPending,
				}, nil
			},
		}
		handler := NewBarterHandler(barterSvc)
		r := setupBarterRouter(handler)

		rec := doRequest(r, "POST", "/barter-offers",
			`{"receiver_id":2,"offered_crop_id":1,"offered_quantity_kg":20,"requested_crop_id":3,"requested_quantity_kg":15,"note":"fresh"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		offer := result["barter_offer"].(map[string]interface{})
		if offer["status"] != "pending" {
			t.Errorf("expected status pending, got %v", offer["status"])
		}
	})

	t.Run("returns 400 on self barter", func(t *testing.T) {
		barterSvc := &mockBarterService{
			proposeBarterFn: func(_, _, _, _ uint, _, _ float64, _ string) (*models.BarterOffer, error) {
				return nil, apperrors.ErrSelfBarter
			},
		}
		handler := NewBarterHandler(barterSvc)
		r := setupBarterRouter(handler)

		rec := doRequest(r, "POST", "/barter-offers",
			`{"receiver_id":1,"offered_crop_id":1,"offered_quantity_kg":20,"requested_crop_id":3,"requested_quantity_kg":15}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SELF_BARTER")
	})

	t.Run("returns 400 on missing fields", func(t *testing.T) {
		handler := NewBarterHandler(&mockBarterService{})
		r := setupBarterRouter(handler)

		rec := doRequest(r, "POST", "/barter-offers", `{"receiver_id":2}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBarterHandler_ListBarterOffers(t *testing.T) {
	t.Run("returns caller's offers", func(t *testing.T) {
		var gotUserID uint
		barterSvc := &mockBarterService{
			listUserBarterOffersFn: func(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.BarterOffer], error) {
				gotUserID = userID
				resp := pagination.NewPageResponse([]models.BarterOffer{
					{Base: models.Base{ID: 1}, ProposerID: userID, Status: models.BarterStatusPending},
				}, 1, 20, 1)
				return &resp, nil
			},
		}
		handler := NewBarterHandler(barterSvc)
		r := setupBarterRouter(handler)

		rec := doRequest(r, "GET", "/barter-offers", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotUserID != 1 {
			t.Errorf("expected user ID 1 from context, got %d", gotUserID)
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 1 {
			t.Errorf("expected 1 offer, got %d", len(data))
		}
	})
}

func TestBarterHandler_RespondToBarter(t *testing.T) {
	t.Run("accepted maps to accept", func(t *testing.T) {
		var gotAccept bool
		barterSvc := &mockBarterService{
			respondToBarterFn: func(_, _ uint, accept bool) (*models.BarterOffer, error) {
				gotAccept = accept
				return &models.BarterOffer{Status: models.BarterStatusAccepted}, nil
			},
		}
		handler := NewBarterHandler(barterSvc)
		r := setupBarterRouter(handler)

		rec := doRequest(r, "POST", "/barter-offers/3/respond", `{"response":"accepted"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !gotAccept {
			t.Error("expected accept=true for accepted response")
		}
	})

	t.Run("rejected maps to reject", func(t *testing.T) {
		var gotAccept bool
		barterSvc := &mockBarterService{
			respondToBarterFn: func(_, _ uint, accept bool) (*models.BarterOffer, error) {
				gotAccept = accept
				return &models.BarterOffer{Status: models.BarterStatusRejected}, nil
			},
		}
		handler := NewBarterHandler(barterSvc)
		r := setupBarterRouter(handler)

		rec := doRequest(r, "POST", "/barter-offers/3/respond", `{"response":"rejected"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotAccept {
			t.Error("expected accept=false for rejected response")
		}
	})

	t.Run("returns 400 on invalid response value", func(t *testing.T) {
		handler := NewBarterHandler(&mockBarterService{})
		r := setupBarterRouter(handler)

		rec := doRequest(r, "POST", "/barter-offers/3/respond", `{"response":"maybe"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 403 when not the receiver", func(t *testing.T) {
		barterSvc := &mockBarterService{
			respondToBarterFn: func(_, _ uint, _ bool) (*models.BarterOffer, error) {
				return nil, apperrors.ErrForbidden
			},
		}
		handler := NewBarterHandler(barterSvc)
		r := setupBarterRouter(handler)

		rec := doRequest(r, "POST", "/barter-offers/3/respond", `{"response":"accepted"}`)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}
