/*
 *     Copyright 2023 The MAGSOLUTION Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package middlewares

import (
	"net/http"

	"github.com/VividCortex/mysqlerr"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/magsolution/sat/internal/satcodes"
	"github.com/magsolution/sat/internal/saterrors"
	logger "github.com/magsolution/sat/internal/satlog"
)

// pgUniqueViolation is the postgres sqlstate of a unique constraint violation.
const pgUniqueViolation = "23505"

type ErrorResponse struct {
	Code    satcodes.Code `json:"code,omitempty"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
	Fields  []string      `json:"fields,omitempty"`
}

var statuses = map[satcodes.Code]int{
	satcodes.BadRequest:         http.StatusBadRequest,
	satcodes.Unauthorized:       http.StatusUnauthorized,
	satcodes.Forbidden:          http.StatusForbidden,
	satcodes.NotFound:           http.StatusNotFound,
	satcodes.Conflict:           http.StatusConflict,
	satcodes.UnknownError:       http.StatusInternalServerError,
	satcodes.InvalidInput:       http.StatusBadRequest,
	satcodes.PredictionFailed:   http.StatusInternalServerError,
	satcodes.ModelUnavailable:   http.StatusServiceUnavailable,
	satcodes.TrainingInProgress: http.StatusConflict,
	satcodes.TrainingFailed:     http.StatusInternalServerError,
	satcodes.ModelArtifactError: http.StatusInternalServerError,
}

// HTTPStatus returns the status of code, unknown codes are internal errors.
func HTTPStatus(code satcodes.Code) int {
	if status, ok := statuses[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}

func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		err := c.Errors.Last()
		if err == nil {
			return
		}

		// Gin error handler
		if err, ok := errors.Cause(err.Err).(*gin.Error); ok {
			switch err.Type {
			case gin.ErrorTypeBind:
				c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
					Message: http.StatusText(http.StatusUnprocessableEntity),
					Error:   err.Error(),
				})
				return
			default:
				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: http.StatusText(http.StatusInternalServerError),
				})
				return
			}
		}

		// Service error handler, internal causes never reach the caller.
		if serr, ok := saterrors.As(err.Err); ok {
			status := HTTPStatus(serr.Code)
			if status >= http.StatusInternalServerError {
				logger.GinLogger.Errorw("request failed", "path", c.Request.URL.Path, "error", serr.Error())
				c.JSON(status, ErrorResponse{
					Code:    serr.Code,
					Message: serr.Code.Message(),
				})
				return
			}

			c.JSON(status, ErrorResponse{
				Code:    serr.Code,
				Message: serr.Message,
				Fields:  serr.Fields,
			})
			return
		}

		// GORM ErrRecordNotFound handler
		if errors.Is(err.Err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    satcodes.NotFound,
				Message: http.StatusText(http.StatusNotFound),
			})
			return
		}

		// Mysql error handler
		var merr *mysql.MySQLError
		if errors.As(err.Err, &merr) && merr.Number == mysqlerr.ER_DUP_ENTRY {
			c.JSON(http.StatusConflict, ErrorResponse{
				Code:    satcodes.Conflict,
				Message: http.StatusText(http.StatusConflict),
			})
			return
		}

		// Postgres error handler
		var perr *pgconn.PgError
		if errors.As(err.Err, &perr) && perr.Code == pgUniqueViolation {
			c.JSON(http.StatusConflict, ErrorResponse{
				Code:    satcodes.Conflict,
				Message: http.StatusText(http.StatusConflict),
			})
			return
		}

		// Unknown error
		logger.GinLogger.Errorw("request failed", "path", c.Request.URL.Path, "error", err.Error())
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    satcodes.UnknownError,
			Message: http.StatusText(http.StatusInternalServerError),
		})
	}
}
