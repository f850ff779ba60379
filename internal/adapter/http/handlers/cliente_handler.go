package handlers

import (
	"errors"
	"net/http"

	request "oficina_mb/internal/adapter/http/dto/request"
	response "oficina_mb/internal/adapter/http/dto/response"
	"oficina_mb/internal/usecase"
	"oficina_mb/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidClientePayload = pkg.NewDomainErrorSimple("INVALID_CLIENTE_INPUT", "Invalid cliente payload", http.StatusBadRequest)
)

// ClienteHandler handles HTTP requests for customer/vehicle registration
// and lookup.

type ClienteHandler struct {
	usecase usecase.IClienteUseCase
}

func NewClienteHandler(uc usecase.IClienteUseCase) *ClienteHandler {
	return &ClienteHandler{usecase: uc}
}

// CreateCliente registers a cliente and, when the payload carries one, its
// first carro. The carro write happens after the cliente write; when only
// the carro fails the cliente stays registered and the error names the
// carro step, so the user can retry just that part.
func (h *ClienteHandler) CreateCliente(c *gin.Context) {
	var payload request.ClienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	cliente, carro, err := h.usecase.Register(c.Request.Context(), payload.ToEntity(), payload.ResolveCarro())
	if err != nil {
		if cliente.ID != "" {
			appErr := pkg.NewDomainError("CARRO_NOT_SAVED", "Cliente registered but carro could not be saved", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromCliente(cliente)
	if carro != nil {
		res.Carros = append(res.Carros, response.FromCarro(*carro))
	}
	c.JSON(http.StatusCreated, res)
}

func (h *ClienteHandler) UpdateCliente(c *gin.Context) {
	var payload request.ClienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	cliente, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCliente(cliente))
}

func (h *ClienteHandler) GetCliente(c *gin.Context) {
	ctx := c.Request.Context()

	cliente, err := h.usecase.GetByID(ctx, c.Param("id"))
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	carros, err := h.usecase.ListCarros(ctx, cliente.ID)
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClienteComCarros(cliente, carros))
}

// SearchClientes resolves the search box: nome prefix or exact placa.
func (h *ClienteHandler) SearchClientes(c *gin.Context) {
	clientes, err := h.usecase.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientes(clientes))
}

func (h *ClienteHandler) LookupCEP(c *gin.Context) {
	endereco, err := h.usecase.LookupCEP(c.Request.Context(), c.Param("cep"))
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, endereco)
}

func mapClienteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClienteID),
		errors.Is(err, usecase.ErrInvalidClienteNome),
		errors.Is(err, usecase.ErrInvalidCarroPlaca),
		errors.Is(err, usecase.ErrInvalidCEP):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCEPNaoEncontrado):
		return pkg.NewDomainErrorSimple("CEP_NOT_FOUND", "CEP not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
