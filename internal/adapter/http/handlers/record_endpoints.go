package handlers

import (
	"context"
	"log"
	"net/http"

	response "logistics_backoffice/internal/adapter/http/dto/response"
	"logistics_backoffice/internal/domain/query"
	"logistics_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// recordUseCase is the CRUD surface shared by the plain back office records.
type recordUseCase[T any, P any] interface {
	Create(ctx context.Context, rec T) (T, error)
	GetByID(ctx context.Context, id string) (T, error)
	List(ctx context.Context, q query.ListQuery) (query.Page[T], error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) (T, error)
}

type recordPayload[T any, P any] interface {
	HasRequired() bool
	ToEntity() T
	ToPatch() P
}

// recordEndpoints implements list/get/create/update/delete for one record type.
type recordEndpoints[T any, P any, R any] struct {
	usecase    recordUseCase[T, P]
	area       string
	required   string
	deleted    string
	newPayload func() recordPayload[T, P]
	toResponse func(T) R
	mapError   func(error) *pkg.AppError
}

func (e recordEndpoints[T, P, R]) list(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	page, err := e.usecase.List(c.Request.Context(), q)
	if err != nil {
		writeError(c, e.mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.List(page, q.Fields, e.toResponse))
}

func (e recordEndpoints[T, P, R]) get(c *gin.Context) {
	rec, err := e.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, e.mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.Success(e.toResponse(rec)))
}

func (e recordEndpoints[T, P, R]) create(c *gin.Context) {
	payload := e.newPayload()
	if !bindJSON(c, e.area, payload) {
		return
	}
	if !requireFields(c, payload.HasRequired(), e.required) {
		return
	}
	rec, err := e.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, e.mapError(err))
		return
	}
	log.Printf("[%s][handler] created", e.area)
	c.JSON(http.StatusCreated, response.Success(e.toResponse(rec)))
}

func (e recordEndpoints[T, P, R]) update(c *gin.Context) {
	payload := e.newPayload()
	if !bindJSON(c, e.area, payload) {
		return
	}
	rec, err := e.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, e.mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.Success(e.toResponse(rec)))
}

func (e recordEndpoints[T, P, R]) remove(c *gin.Context) {
	rec, err := e.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, e.mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(e.deleted, e.toResponse(rec)))
}
