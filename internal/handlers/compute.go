package handlers

import (
	"errors"
	"net/http"

	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RangeRequest selects the sampled interval. x_min may exceed x_max.
type RangeRequest struct {
	XMin *float64 `json:"x_min" binding:"required" example:"0"`
	XMax *float64 `json:"x_max" binding:"required" example:"1"`
}

type IntValueRequest struct {
	Value *int64 `json:"value" binding:"required" example:"21"`
}

type FloatValueRequest struct {
	Value *float64 `json:"value" binding:"required" example:"5"`
}

type StringValueRequest struct {
	Value *string `json:"value" binding:"required" example:"ab"`
}

func (h *Handler) computeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNonFinite), errors.Is(err, service.ErrOverflow), errors.Is(err, service.ErrUnknownSeries):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "compute_failed", err, "path", c.FullPath())
	}
}

// @Summary      Evenly spaced samples
// @Tags         compute
// @Accept       json
// @Produce      json
// @Param        body  body      RangeRequest  true  "Range"
// @Success      200   {object}  service.Series
// @Failure      400   {object}  map[string]string
// @Router       /linspace [post]
func (h *Handler) linspace(c *gin.Context) {
	var req RangeRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	s, err := h.services.Compute.Linspace(*req.XMin, *req.XMax)
	if err != nil {
		h.computeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// series serves POST /exp_cos, /logistic and /multi_bump.
//
// @Summary      Sampled function
// @Tags         compute
// @Accept       json
// @Produce      json
// @Param        body  body      RangeRequest  true  "Range"
// @Success      200   {object}  service.Series
// @Failure      400   {object}  map[string]string
// @Router       /exp_cos [post]
// @Router       /logistic [post]
// @Router       /multi_bump [post]
func (h *Handler) series(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RangeRequest
		if ok := h.bindJSONOrBadRequest(c, &req); !ok {
			return
		}
		s, err := h.services.Compute.Series(name, *req.XMin, *req.XMax)
		if err != nil {
			h.computeError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// @Summary      Double an integer
// @Tags         compute
// @Accept       json
// @Produce      json
// @Param        body  body      IntValueRequest  true  "Value"
// @Success      200   {object}  map[string]int64
// @Failure      400   {object}  map[string]string
// @Router       /double [post]
func (h *Handler) double(c *gin.Context) {
	var req IntValueRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	v, err := h.services.Compute.Double(*req.Value)
	if err != nil {
		h.computeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": v})
}

// @Summary      Halve a number
// @Tags         compute
// @Accept       json
// @Produce      json
// @Param        body  body      FloatValueRequest  true  "Value"
// @Success      200   {object}  map[string]float64
// @Failure      400   {object}  map[string]string
// @Router       /half [post]
func (h *Handler) half(c *gin.Context) {
	var req FloatValueRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": h.services.Compute.Half(*req.Value)})
}

// @Summary      Repeat a string
// @Tags         compute
// @Accept       json
// @Produce      json
// @Param        body  body      StringValueRequest  true  "Value"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /repeat [post]
func (h *Handler) repeat(c *gin.Context) {
	var req StringValueRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": h.services.Compute.Repeat(*req.Value)})
}
