package handler

import (
	"log/slog"
	"net/http"

	"arklane/internal/delivery/http/response"
	"arklane/internal/domain/entity"
	"arklane/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QuoteHandler holds dependencies for quoting and vendor selection handlers.
type QuoteHandler struct {
	quotes    usecase.QuoteUsecase
	selection usecase.SelectionUsecase
	logger    *slog.Logger
}

// NewQuoteHandler is the constructor for QuoteHandler, injected by Fx.
func NewQuoteHandler(quotes usecase.QuoteUsecase, selection usecase.SelectionUsecase, logger *slog.Logger) *QuoteHandler {
	return &QuoteHandler{
		quotes:    quotes,
		selection: selection,
		logger:    logger,
	}
}

type quoteRequest struct {
	ServiceType  string `json:"serviceType" validate:"required"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	AnimalType   string `json:"animalType"`
	DocumentType string `json:"documentType"`
	Country      string `json:"country"`
}

type bestVendorRequest struct {
	ServiceType string   `json:"serviceType" validate:"required"`
	ServiceArea *string  `json:"serviceArea"`
	MinRating   *float64 `json:"minRating" validate:"omitempty,gte=0,lte=5"`
}

func (r *quoteRequest) toUsecase() *usecase.QuoteRequest {
	return &usecase.QuoteRequest{
		Origin:       r.Origin,
		Destination:  r.Destination,
		AnimalType:   r.AnimalType,
		DocumentType: r.DocumentType,
		Country:      r.Country,
	}
}

// GetQuote resolves the applicable price for one vendor and one request.
func (h *QuoteHandler) GetQuote(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote request")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	quote, err := h.quotes.GetPriceQuote(c.Request().Context(), c.Param("id"), entity.ServiceType(req.ServiceType), req.toUsecase())
	if err != nil {
		return errors.WithStack(err)
	}
	if quote == nil {
		// No matching price entry; a normal empty result, not an error.
		return response.Success(c, http.StatusOK, nil, "No quote available for the given request")
	}

	return response.Success(c, http.StatusOK, toQuoteResponse(quote), "")
}

// CompareQuotes resolves quotes from every vendor offering the service type,
// cheapest first.
func (h *QuoteHandler) CompareQuotes(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote request")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	quotes, err := h.quotes.CompareQuotes(c.Request().Context(), entity.ServiceType(req.ServiceType), req.toUsecase())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*quoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, toQuoteResponse(q))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// FindBestVendor returns the top-scoring vendor for a service, or an empty
// result when no candidate survives the criteria.
func (h *QuoteHandler) FindBestVendor(c echo.Context) error {
	var req bestVendorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection request")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.selection.FindBestVendor(c.Request().Context(), entity.ServiceType(req.ServiceType), &usecase.SelectionCriteria{
		ServiceArea: req.ServiceArea,
		MinRating:   req.MinRating,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if result == nil {
		return response.Success(c, http.StatusOK, nil, "No vendor matches the given criteria")
	}

	return response.Success(c, http.StatusOK, &selectionResponse{
		Vendor: toVendorResponse(result.Vendor),
		Score:  result.Score,
	}, "")
}
