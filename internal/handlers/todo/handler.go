package todo

import (
	"net/http"

	"todoapi/infras/otel"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/internal/domains/todo/service"
	"todoapi/shared"
	"todoapi/shared/constant"
	"todoapi/shared/validator"
	"todoapi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageDeleted = "Successfully deleted 1 todo"

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todo", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListTodos)
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/{id}", handler.GetTodo)
		routerGroup.Put("/{id}", handler.UpdateTodo)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
	})
}

// ListTodos returns every todo.
// @Summary List todos
// @Description Retrieve every todo ordered by id.
// @Tags Todo
// @Produce json
// @Success 200 {object} response.Success[[]dto.TodoResponse]
// @Failure 500 {object} response.Error
// @Router /api/todo [get]
func (handler *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListTodos")
	defer scope.End()

	todos, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list todos")

		response.WithError(w, err)

		return
	}

	response.WithSuccess(w, http.StatusOK, todos)
}

// CreateTodo handles the creation of a new todo item.
// @Summary Create a todo
// @Description Create a todo. Every field is required, an id in the body is ignored.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.TodoRequest true "Todo"
// @Success 200 {object} response.Success[dto.TodoResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todo [post]
func (handler *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.TodoRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid create todo request")

		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo created successfully")

	response.WithSuccess(w, http.StatusOK, todo)
}

// GetTodo retrieves a todo item by its ID.
// @Summary Get a todo
// @Tags Todo
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} response.Success[dto.TodoResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todo/{id} [get]
func (handler *Handler) GetTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodo")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get todo")

		response.WithError(w, err)

		return
	}

	response.WithSuccess(w, http.StatusOK, todo)
}

// UpdateTodo replaces an existing todo item by its ID.
// @Summary Update a todo
// @Description Replace title, description, completed and createdAt. Absent fields are cleared.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Param request body dto.TodoRequest true "Todo"
// @Success 200 {object} response.Success[dto.TodoResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todo/{id} [put]
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.TodoRequest{}
	if err = validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid update todo request")

		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo updated successfully")

	response.WithSuccess(w, http.StatusOK, todo)
}

// DeleteTodo deletes a todo item by its ID.
// @Summary Delete a todo
// @Tags Todo
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} response.Success[string]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/todo/{id} [delete]
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo deleted successfully")

	response.WithSuccess(w, http.StatusOK, messageDeleted)
}
