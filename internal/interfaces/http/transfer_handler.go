package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/custodia-api/internal/application/dto"
	"github.com/jhoicas/custodia-api/internal/application/ledger"
	"github.com/jhoicas/custodia-api/internal/application/usecase"
	"github.com/jhoicas/custodia-api/internal/domain"
	"github.com/jhoicas/custodia-api/pkg/validator"
)

// TransferHandler maneja las peticiones HTTP del ledger de transferencias.
type TransferHandler struct {
	uc      *ledger.RecordTransferUseCase
	assetUC *usecase.AssetUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *ledger.RecordTransferUseCase, assetUC *usecase.AssetUseCase) *TransferHandler {
	return &TransferHandler{uc: uc, assetUC: assetUC}
}

// Record godoc
// @Summary      Asentar transferencia
// @Description  El origen se deriva del historial del activo, nunca del cliente. direction es
//
//	opcional y solo se acepta si coincide con la derivada. Ante CONCURRENT_MODIFICATION
//	la respuesta incluye la ubicación actual para que el caller reintente informado.
//
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordTransferRequest  true  "Datos de la transferencia"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(errs)})
	}
	transfer, err := h.uc.Record(c.Context(), ledger.TransferInput{
		AssetID:          in.AssetID,
		Direction:        in.Direction,
		TargetKind:       in.TargetKind,
		TargetUnitID:     in.TargetUnitID,
		SpecificLocation: in.SpecificLocation,
		Notes:            in.Notes,
		ProcessedBy:      in.ProcessedBy,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConcurrentModification) {
			resp := dto.ErrorResponse{Code: "CONCURRENT_MODIFICATION", Message: err.Error()}
			// Adjuntar la ubicación fresca para que el caller reintente contra ella.
			if asset, getErr := h.assetUC.GetByID(c.Context(), in.AssetID); getErr == nil && asset != nil {
				loc := asset.CurrentLocation
				resp.CurrentLocation = &loc
			}
			return c.Status(fiber.StatusConflict).JSON(resp)
		}
		return respondError(c, err)
	}
	out := dto.NewTransferResponse(transfer)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar transferencias
// @Tags         transfers
// @Produce      json
// @Param        direction  query  string  false  "Filtrar por dirección"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.TransferListResponse
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	var in dto.TransferFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(errs)})
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de un activo
// @Description  Devuelve el historial completo del activo, del más antiguo al más reciente.
// @Tags         transfers
// @Produce      json
// @Param        id   path  string  true  "ID del activo"
// @Success      200  {array}   dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/transfers [get]
func (h *TransferHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
