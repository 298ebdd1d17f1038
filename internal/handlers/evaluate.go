package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rollcv/rollcv/internal/accuracy"
	"github.com/rollcv/rollcv/internal/forecaster"
	"github.com/rollcv/rollcv/internal/models"
	"github.com/rollcv/rollcv/internal/services"
)

// Evaluate handles evaluation requests
// POST /v1/evaluate
func (h *Handler) Evaluate(c *fiber.Ctx) error {
	var body models.EvaluateRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_JSON",
				Message: "Failed to parse JSON body",
				Details: map[string]interface{}{"error": err.Error()},
			},
		})
	}

	body.ApplyDefaults()

	if len(body.Series) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "series is required",
			},
		})
	}
	if body.Window != models.WindowFixed && body.Window != models.WindowExpanding {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "window must be \"fixed\" or \"expanding\"",
			},
		})
	}
	if len(body.Start) > 2 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "start must be [cycle] or [cycle, period]",
			},
		})
	}

	startCycle, startPeriod := 1, 1
	if len(body.Start) >= 1 {
		startCycle = body.Start[0]
	}
	if len(body.Start) == 2 {
		startPeriod = body.Start[1]
	}

	req := &services.EvalRequest{
		Series:      models.FromNullable(body.Series),
		Frequency:   body.Frequency,
		StartCycle:  startCycle,
		StartPeriod: startPeriod,
		Method:      body.Method,
		Horizon:     body.Horizon,
		StepSize:    body.StepSize,
		MinObs:      body.MinObs,
		FixedWindow: body.Window == models.WindowFixed,
		Metrics:     body.Metrics,
		PreProcess:  body.PreProcess,
		PPMethod:    body.PPMethod,
		Lambda:      body.Lambda,
		Workers:     body.Workers,
	}
	if body.Xreg != nil {
		req.XregNames = body.Xreg.Names
		req.XregRows = models.FromNullableRows(body.Xreg.Rows)
	}

	result, err := h.evalService.Execute(c.Context(), req)
	if err != nil {
		if svcErr, ok := err.(*services.ServiceError); ok {
			status := fiber.StatusInternalServerError
			switch svcErr.Code {
			case "INVALID_CONFIG", "INVALID_SERIES", "INVALID_XREG", "LIMIT_EXCEEDED":
				status = fiber.StatusBadRequest
			case "UNKNOWN_METHOD":
				status = fiber.StatusNotFound
			case "MODEL_FAILED":
				status = fiber.StatusUnprocessableEntity
			}
			return c.Status(status).JSON(models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    svcErr.Code,
					Message: svcErr.Message,
					Details: svcErr.Details,
				},
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EVAL_FAILED",
				Message: err.Error(),
			},
		})
	}

	rows := make([]models.AccuracyRowView, len(result.Results))
	for i, row := range result.Results {
		rows[i] = models.AccuracyRowView{
			Horizon: row.Horizon,
			Metrics: models.ToNullableMetrics(row.Metrics),
		}
	}

	return c.JSON(models.EvaluateResponse{
		RunID:     result.RunID,
		Method:    result.Method,
		Origins:   result.Origins,
		Results:   rows,
		Forecasts: models.ToNullableRows(result.Forecasts),
		Actuals:   models.ToNullableRows(result.Actuals),
		ElapsedMS: result.ElapsedMS,
	})
}

// Methods handles method discovery requests
// GET /v1/methods
func (h *Handler) Methods(c *fiber.Ctx) error {
	return c.JSON(models.MethodsResponse{
		Methods: forecaster.List(),
		Metrics: accuracy.AllMetrics,
	})
}
