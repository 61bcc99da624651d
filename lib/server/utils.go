package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/pescuma/bethyw/lib/model"
)

type GridParams struct {
	Offset *int `form:"offset"`
	Limit  *int `form:"limit"`
}

func sendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrParseFailure), errors.Is(err, model.ErrInvalidFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func bind[P any](c *gin.Context) (*P, bool) {
	var params P

	if len(c.Params) > 0 {
		err := c.ShouldBindUri(&params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
	}

	err := c.ShouldBindQuery(&params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	return &params, true
}

func getP[P any](f func(*P) (any, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		params, ok := bind[P](c)
		if !ok {
			return
		}

		result, err := f(params)
		if err != nil {
			sendError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func getTextP[P any](f func(*P) (string, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		params, ok := bind[P](c)
		if !ok {
			return
		}

		result, err := f(params)
		if err != nil {
			sendError(c, err)
			return
		}

		c.String(http.StatusOK, result)
	}
}

func paginate[T any](col []T, offset, limit *int) []T {
	if offset != nil && *offset > 0 {
		if *offset > len(col) {
			return []T{}
		}

		col = col[*offset:]
	}

	if limit != nil && *limit >= 0 && *limit < len(col) {
		col = col[:*limit]
	}

	return col
}
